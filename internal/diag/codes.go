package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Ошибки: лексические, синтаксические, семантические
	LexError   Code = 1 // E001
	SynError   Code = 2 // E002
	SemaError  Code = 3 // E003
	SemaUnused Code = 1001

	// Загрузка файлов
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:     "Unknown error",
	LexError:        "Lexical error",
	SynError:        "Syntax error",
	SemaError:       "Semantic error",
	SemaUnused:      "Semantic warning",
	IOLoadFileError: "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic == 0:
		return ""
	case ic < 1000:
		return fmt.Sprintf("E%03d", ic)
	case ic < 2000:
		return fmt.Sprintf("W%03d", ic-1000)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%03d", ic-4000)
	}
	return "E000"
}

// ParseCode is the inverse of ID. Unknown ids map to UnknownCode.
func ParseCode(id string) Code {
	for c := range codeDescription {
		if c != UnknownCode && c.ID() == id {
			return c
		}
	}
	return UnknownCode
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.ID()), nil
}

func (c *Code) UnmarshalText(b []byte) error {
	*c = ParseCode(string(b))
	return nil
}
