// Package buildinfo хранит версию, дату и коммит сборки, заданные через -ldflags.
package buildinfo

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// NotAvailable значение для полей, не заданных при сборке
const NotAvailable = "N/A"

// Info содержит информацию о сборке приложения
type Info struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// New создает Info; пустые значения заменяются на N/A
func New(version, date, commit string) *Info {
	return &Info{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

// Fprint выводит информацию о сборке построчно
func (info *Info) Fprint(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		info.Version, info.Date, info.Commit)
	return err
}

// Fields возвращает поля для структурированного лога
func (info *Info) Fields() []zap.Field {
	return []zap.Field{
		zap.String("version", info.Version),
		zap.String("build_date", info.Date),
		zap.String("commit", info.Commit),
	}
}

func (info *Info) String() string {
	return fmt.Sprintf("Version: %s, Date: %s, Commit: %s", info.Version, info.Date, info.Commit)
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
