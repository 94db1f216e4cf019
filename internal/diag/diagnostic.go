package diag

import (
	"encoding/json"

	"htms/internal/source"
)

type Note struct {
	Loc source.Location
	Msg string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Location
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Location, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Location, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func NewWarning(code Code, primary source.Location, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}

func (d Diagnostic) WithNote(loc source.Location, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Loc: loc, Msg: msg})
	return d
}

func (d Diagnostic) IsError() bool { return d.Severity >= SevError }

// wireDiagnostic is the serialized shape shared with other tools:
// {severity, message, location{line,column,start,end}, code?}. Notes are
// not part of it.
type wireDiagnostic struct {
	Severity Severity        `json:"severity"`
	Message  string          `json:"message"`
	Location source.Location `json:"location"`
	Code     string          `json:"code,omitempty"`
}

func (d Diagnostic) toWire() wireDiagnostic {
	return wireDiagnostic{
		Severity: d.Severity,
		Message:  d.Message,
		Location: d.Primary,
		Code:     d.Code.ID(),
	}
}

func (w wireDiagnostic) diagnostic() Diagnostic {
	return Diagnostic{
		Severity: w.Severity,
		Code:     ParseCode(w.Code),
		Message:  w.Message,
		Primary:  w.Location,
	}
}

func (d Diagnostic) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.toWire())
}

func (d *Diagnostic) UnmarshalJSON(b []byte) error {
	var w wireDiagnostic
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*d = w.diagnostic()
	return nil
}
