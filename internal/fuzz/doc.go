// Package fuzztests houses Go fuzz harnesses that exercise the htms
// front end (source -> lexer -> parser -> analyzer). Its goal is to smoke
// test robustness and guard against panics or hangs on arbitrary inputs.
//
// Назначение: прогонять произвольные байты через лексер, парсер и драйвер и
// проверять инварианты токенов и локаций.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/lexer, internal/parser, internal/driver,
// internal/testkit.
package fuzztests
