package services

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SupportedLanguages lists the languages documents are rendered in. The first
// entry is the fallback.
var SupportedLanguages = []language.Tag{
	language.English,
	language.German,
}

// DocumentFormatter renders document numbers for one language.
type DocumentFormatter struct {
	tag     language.Tag
	printer *message.Printer
}

func NewDocumentFormatter(tag language.Tag) DocumentFormatter {
	return DocumentFormatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

// NewDocumentFormatterForHeader picks the best supported language from an
// Accept-Language header value.
func NewDocumentFormatterForHeader(acceptLanguage string) DocumentFormatter {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return NewDocumentFormatter(SupportedLanguages[0])
	}

	matcher := language.NewMatcher(SupportedLanguages)
	_, idx, _ := matcher.Match(tags...)
	return NewDocumentFormatter(SupportedLanguages[idx])
}

func (f DocumentFormatter) Language() language.Tag {
	return f.tag
}

// Money formats an amount with two fraction digits and the currency sign.
func (f DocumentFormatter) Money(d decimal.Decimal) string {
	return f.printer.Sprintf("%.2f €", d.Round(moneyScale).InexactFloat64())
}

// Tons formats a weight in tons with three fraction digits.
func (f DocumentFormatter) Tons(d decimal.Decimal) string {
	return f.printer.Sprintf("%.3f t", d.Round(tonsScale).InexactFloat64())
}

// Percent formats a rate such as 0.19 as "19%".
func (f DocumentFormatter) Percent(rate decimal.Decimal) string {
	return f.printer.Sprintf("%d%%", rate.Shift(2).Round(0).IntPart())
}
