package contract

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festa/internal/core/types"
)

func sampleData() Data {
	return Data{
		CompanyName:      "Festa Encantada Ltda",
		CompanyTaxID:     "12.345.678/0001-90",
		ClientName:       "Maria Silva",
		ClientTaxID:      "123.456.789-00",
		ClientAddress:    "Rua das Flores, 10 - Centro - São Paulo - SP",
		EventDate:        time.Date(2024, 6, 15, 15, 0, 0, 0, time.UTC),
		DurationMinutes:  120,
		Venue:            "Salão Azul",
		Items:            []string{"Princesa Aurora", "Pacote Completo"},
		ContractValue:    types.MustMoney("1000.00"),
		EntryPayment:     types.MustMoney("250.00"),
		InstallmentCount: 3,
	}
}

func TestInstallment(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		entry   string
		count   int
		want    string
	}{
		{"three installments", "1000.00", "250.00", 3, "250"},
		{"rounding to cents", "1000.00", "0.00", 3, "333.33"},
		{"zero count treated as one", "1000.00", "250.00", 0, "750"},
		{"negative count treated as one", "1000.00", "250.00", -5, "750"},
		{"no entry", "600.00", "0.00", 2, "300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Data{
				ContractValue:    types.MustMoney(tt.value),
				EntryPayment:     types.MustMoney(tt.entry),
				InstallmentCount: tt.count,
			}
			assert.Equal(t, tt.want, d.Installment().String())
		})
	}
}

func TestEnd_DerivedFromDuration(t *testing.T) {
	d := sampleData()
	assert.Equal(t, time.Date(2024, 6, 15, 17, 0, 0, 0, time.UTC), d.End())
}

func TestEnd_ExplicitOverridesDuration(t *testing.T) {
	d := sampleData()
	explicit := time.Date(2024, 6, 15, 19, 30, 0, 0, time.UTC)
	d.EndTime = &explicit
	assert.Equal(t, explicit, d.End())
}

func TestAssemble_Individual(t *testing.T) {
	doc := Assemble(sampleData(), KindIndividual)

	assert.Equal(t, KindIndividual, doc.Kind)
	assert.Equal(t, "Contrato-Maria-Silva-2024-06-15.pdf", doc.Filename)

	text := flatten(doc)
	assert.Contains(t, text, "Maria Silva")
	assert.Contains(t, text, "CPF")
	assert.Contains(t, text, "15/06/2024")
	assert.Contains(t, text, "15:00")
	assert.Contains(t, text, "17:00")
	assert.Contains(t, text, "Princesa Aurora")
	assert.Contains(t, text, "R$ 1.000,00")
	assert.Contains(t, text, "R$ 250,00")
	assert.Contains(t, text, "3 parcela(s) de R$ 250,00")
}

func TestAssemble_Corporate(t *testing.T) {
	d := sampleData()
	d.ClientName = "Buffet Alegria Ltda"
	d.ClientTaxID = "98.765.432/0001-10"
	d.ContactPerson = "João Souza"

	doc := Assemble(d, KindCorporate)

	assert.Equal(t, "Contrato-Corporativo-Buffet-Alegria-Ltda-2024-06-15.pdf", doc.Filename)
	text := flatten(doc)
	assert.Contains(t, text, "pessoa jurídica")
	assert.Contains(t, text, "João Souza")
	assert.NotContains(t, text, "CPF nº")
}

func TestAssemble_BlankOptionalFields(t *testing.T) {
	d := Data{
		ClientName:    "Ana",
		EventDate:     time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC),
		ContractValue: types.MustMoney("100.00"),
	}

	// No error path: absent data renders as blanks.
	doc := Assemble(d, KindIndividual)
	text := flatten(doc)
	assert.Contains(t, text, "____________________")
	assert.Contains(t, text, "1 parcela(s) de R$ 100,00")
	assert.Contains(t, text, "Conforme pacote contratado")
}

func TestFilename(t *testing.T) {
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Contrato-Maria-Silva-2024-06-15.pdf", Filename("Maria Silva", date, KindIndividual))
	assert.Equal(t, "Contrato-Corporativo-Acme-2024-06-15.pdf", Filename("Acme", date, KindCorporate))
	// Path-hostile characters are stripped, empty names get a placeholder.
	assert.Equal(t, "Contrato-AB-2024-06-15.pdf", Filename(`A/B:`, date, KindIndividual))
	assert.Equal(t, "Contrato-Cliente-2024-06-15.pdf", Filename("  ", date, KindIndividual))
}

func TestRenderPDF(t *testing.T) {
	doc := Assemble(sampleData(), KindIndividual)

	out, err := RenderPDF(doc)
	require.NoError(t, err)
	assert.True(t, len(out) > 500)
	assert.True(t, strings.HasPrefix(string(out[:5]), "%PDF-"))
}

func flatten(doc Document) string {
	var b strings.Builder
	b.WriteString(doc.Title)
	for _, s := range doc.Sections {
		b.WriteString("\n" + s.Heading)
		for _, p := range s.Paragraphs {
			b.WriteString("\n" + p)
		}
	}
	return b.String()
}
