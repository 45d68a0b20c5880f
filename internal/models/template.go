package models

// Template is an immutable message template for one compliance category.
// Subject is used verbatim; Body may contain the named placeholders
// {sender_name} and {recipient_name}. Rationale, when present, is used only
// by the fine-tuning output as the explanation attached to the label.
type Template struct {
	Label     Label
	Subject   string
	Body      string
	Rationale string
}
