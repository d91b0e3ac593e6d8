package contract

import (
	"fmt"
	"strings"

	"festa/internal/core/types"
)

// The two legal templates share most sections; they differ in how the
// parties are identified and in the signature block.

func individualSections(d Data) []Section {
	return []Section{
		partiesIndividual(d),
		eventSection(d),
		itemsSection(d),
		paymentSection(d),
		signatureSection(d, d.ClientName),
	}
}

func corporateSections(d Data) []Section {
	signer := d.ContactPerson
	if signer == "" {
		signer = d.ClientName
	}
	return []Section{
		partiesCorporate(d),
		eventSection(d),
		itemsSection(d),
		paymentSection(d),
		signatureSection(d, signer),
	}
}

func partiesIndividual(d Data) Section {
	return Section{
		Heading: "Das Partes",
		Paragraphs: []string{
			fmt.Sprintf("CONTRATADA: %s, inscrita no CNPJ sob o nº %s.",
				blankIfEmpty(d.CompanyName), blankIfEmpty(d.CompanyTaxID)),
			fmt.Sprintf("CONTRATANTE: %s, CPF nº %s, residente em %s.",
				blankIfEmpty(d.ClientName), blankIfEmpty(d.ClientTaxID), blankIfEmpty(d.ClientAddress)),
		},
	}
}

func partiesCorporate(d Data) Section {
	return Section{
		Heading: "Das Partes",
		Paragraphs: []string{
			fmt.Sprintf("CONTRATADA: %s, inscrita no CNPJ sob o nº %s.",
				blankIfEmpty(d.CompanyName), blankIfEmpty(d.CompanyTaxID)),
			fmt.Sprintf("CONTRATANTE: %s, pessoa jurídica inscrita no CNPJ sob o nº %s, com sede em %s, neste ato representada por %s.",
				blankIfEmpty(d.ClientName), blankIfEmpty(d.ClientTaxID), blankIfEmpty(d.ClientAddress), blankIfEmpty(d.ContactPerson)),
		},
	}
}

func eventSection(d Data) Section {
	start := d.EventDate
	end := d.End()
	return Section{
		Heading: "Do Evento",
		Paragraphs: []string{
			fmt.Sprintf("O evento será realizado no dia %s, com início às %s e término às %s.",
				start.Format("02/01/2006"), start.Format("15:04"), end.Format("15:04")),
			fmt.Sprintf("Local: %s.", blankIfEmpty(d.Venue)),
		},
	}
}

func itemsSection(d Data) Section {
	var text string
	if len(d.Items) == 0 {
		text = "Conforme pacote contratado."
	} else {
		text = "Personagens e pacotes contratados: " + strings.Join(d.Items, ", ") + "."
	}
	return Section{
		Heading:    "Dos Serviços",
		Paragraphs: []string{text},
	}
}

func paymentSection(d Data) Section {
	count := d.InstallmentCount
	if count <= 0 {
		count = 1
	}

	paragraphs := []string{
		fmt.Sprintf("O valor total dos serviços é de %s.", types.FormatBRL(d.ContractValue)),
	}
	if d.EntryPayment.IsPositive() {
		paragraphs = append(paragraphs,
			fmt.Sprintf("Entrada de %s na assinatura deste contrato.", types.FormatBRL(d.EntryPayment)))
	}
	paragraphs = append(paragraphs,
		fmt.Sprintf("O restante será pago em %d parcela(s) de %s.", count, types.FormatBRL(d.Installment())))

	return Section{Heading: "Do Pagamento", Paragraphs: paragraphs}
}

func signatureSection(d Data, signer string) Section {
	paragraphs := []string{
		"E por estarem justas e contratadas, as partes assinam o presente instrumento.",
		fmt.Sprintf("_________________________________  %s", blankIfEmpty(d.CompanyName)),
		fmt.Sprintf("_________________________________  %s", blankIfEmpty(signer)),
	}
	if d.FooterNote != "" {
		paragraphs = append(paragraphs, d.FooterNote)
	}
	return Section{Heading: "Das Assinaturas", Paragraphs: paragraphs}
}

func blankIfEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return "____________________"
	}
	return s
}
