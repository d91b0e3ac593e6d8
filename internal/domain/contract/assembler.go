// Package contract assembles event bookings into printable contract
// documents. Assembly is a pure function from booking data to a document
// definition; rendering to PDF lives in pdf.go.
package contract

import (
	"fmt"
	"strings"
	"time"

	"festa/internal/core/types"
)

// ClientKind selects the contract template.
type ClientKind string

const (
	KindIndividual ClientKind = "individual"
	KindCorporate  ClientKind = "corporate"
)

// Data is everything the templates interpolate. Absent optional fields
// render blank; assembly has no error path.
type Data struct {
	// Company (the contractor)
	CompanyName  string
	CompanyTaxID string
	FooterNote   string

	// Client (the contracting party)
	ClientName    string
	ClientTaxID   string
	ClientAddress string
	ContactPerson string // corporate contracts name who signs

	// Event
	EventDate       time.Time
	DurationMinutes int
	EndTime         *time.Time // explicit end overrides the duration
	Venue           string
	Items           []string // booked characters and packages, in order

	// Money
	ContractValue    types.Money
	EntryPayment     types.Money
	InstallmentCount int
}

// Document is the assembled, template-filled contract.
type Document struct {
	Title    string
	Kind     ClientKind
	Sections []Section
	Filename string
}

// Section is one heading plus its paragraphs.
type Section struct {
	Heading    string
	Paragraphs []string
}

// End returns the event end time: the explicit one when given, otherwise
// start plus duration.
func (d Data) End() time.Time {
	if d.EndTime != nil {
		return *d.EndTime
	}
	return d.EventDate.Add(time.Duration(d.DurationMinutes) * time.Minute)
}

// Installment computes the per-installment amount to two decimal places:
// (contract value - entry payment) / installment count. A count below 1 is
// treated as a single installment.
func (d Data) Installment() types.Money {
	count := d.InstallmentCount
	if count <= 0 {
		count = 1
	}
	remainder := d.ContractValue.Sub(d.EntryPayment)
	return remainder.DivRound(types.NewMoney(float64(count)), 2)
}

// Assemble fills the template selected by the client kind.
func Assemble(data Data, kind ClientKind) Document {
	doc := Document{
		Kind:     kind,
		Filename: Filename(data.ClientName, data.EventDate, kind),
	}

	if kind == KindCorporate {
		doc.Title = "Contrato de Prestação de Serviços - Pessoa Jurídica"
		doc.Sections = corporateSections(data)
	} else {
		doc.Title = "Contrato de Prestação de Serviços"
		doc.Sections = individualSections(data)
	}
	return doc
}

// Filename renders "Contrato[-Corporativo]-<clientName>-<date>.pdf".
func Filename(clientName string, date time.Time, kind ClientKind) string {
	base := "Contrato"
	if kind == KindCorporate {
		base = "Contrato-Corporativo"
	}
	return fmt.Sprintf("%s-%s-%s.pdf", base, sanitizeName(clientName), date.Format("2006-01-02"))
}

// sanitizeName keeps the client name readable in a filename.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Cliente"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == ' ':
			b.WriteRune('-')
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' || r == '"' || r == '<' || r == '>' || r == '|':
			// drop path-hostile characters
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
