package command

import (
	"fmt"
	"strings"
)

type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Title(emoji, title string) string {
	return fmt.Sprintf("%s **%s**\n", emoji, title)
}

func (f *ResponseFormatter) Success(emoji, message string) string {
	return fmt.Sprintf("%s **%s**\n", emoji, message)
}

func (f *ResponseFormatter) Label(emoji, label, value string) string {
	return fmt.Sprintf("%s **%s:** %s", emoji, label, value)
}

func (f *ResponseFormatter) List(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("• %s\n", item))
	}
	return sb.String()
}

func (f *ResponseFormatter) Section(emoji, title, content string) string {
	return fmt.Sprintf("%s **%s**\n%s", emoji, title, content)
}

func (f *ResponseFormatter) Text(text string) string {
	return text
}

func (f *ResponseFormatter) Combine(sections ...string) string {
	return strings.Join(sections, "\n")
}
