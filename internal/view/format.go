package view

import (
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter форматирует числа и сравнивает строки по правилам локали.
// collate.Collator и message.Printer не рассчитаны на конкурентное использование,
// поэтому создаются на каждый вызов.
type Formatter struct {
	tag language.Tag
}

// NewFormatter создает Formatter для BCP 47 тега локали, например "pt-BR"
func NewFormatter(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Formatter{tag: tag}, nil
}

// DefaultFormatter форматирует по правилам pt-BR
func DefaultFormatter() *Formatter {
	return &Formatter{tag: language.BrazilianPortuguese}
}

// Locale возвращает тег локали
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// FormatPopulation форматирует целое число с разделителями разрядов локали
func (f *Formatter) FormatPopulation(n int64) string {
	return message.NewPrinter(f.tag).Sprintf("%d", n)
}

// Collator возвращает новый collator локали для одной сортировки
func (f *Formatter) Collator() *collate.Collator {
	return collate.New(f.tag)
}

// Less сравнивает две строки по правилам локали
func (f *Formatter) Less(a, b string) bool {
	return f.Collator().CompareString(a, b) < 0
}
