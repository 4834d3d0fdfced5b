// Package pdf implementa la generación de la vía única imprimible de la
// Nota Promissória usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda + "NOTA PROMISSÓRIA"  │  Monto + #ID        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TEXTO LEGAL: "Ao dia <vencimento>, pagarei(emos)…"         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMITENTE: nombre / CPF / teléfono  │  REFERÊNCIA: ítems    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: emisión + plaza            │  línea de firma       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/iwr-crediario/internal/application/usecase"
	"github.com/jhoicas/iwr-crediario/internal/domain/entity"
)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorInk  = &props.Color{Red: 20, Green: 20, Blue: 20}
	colorGray = &props.Color{Red: 110, Green: 110, Blue: 110}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.NotePDFGenerator = (*MarotoNoteGenerator)(nil)

// MarotoNoteGenerator implementa usecase.NotePDFGenerator usando Maroto v2.
type MarotoNoteGenerator struct {
	printer *message.Printer
}

// NewMarotoNoteGenerator construye el generador.
func NewMarotoNoteGenerator() *MarotoNoteGenerator {
	return &MarotoNoteGenerator{printer: message.NewPrinter(language.BrazilianPortuguese)}
}

// GenerateNotePDF genera el documento y devuelve sus bytes.
func (g *MarotoNoteGenerator) GenerateNotePDF(note *entity.PromissoryNote, issuer usecase.Issuer) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Nota Promissória #"+note.ID, true).
		WithAuthor(issuer.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(note, issuer))
	m.AddRows(line.NewRow(2, props.Line{Color: colorInk, Thickness: 0.6}))
	m.AddRows(g.legalRow(note, issuer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(detailsRow(note))
	m.AddRows(line.NewRow(8))
	m.AddRows(footerRows(note, issuer)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar nota promissória: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tienda + título (izq), monto + #id (der).
func (g *MarotoNoteGenerator) headerRow(note *entity.PromissoryNote, issuer usecase.Issuer) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(issuer.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorInk, Top: 2,
			}),
			text.New("NOTA PROMISSÓRIA", props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(g.money(note), props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Right, Top: 2, Color: colorInk,
			}),
			text.New("#"+note.ID, props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// legalRow: texto de la promesa de pago, con vencimiento y monto.
func (g *MarotoNoteGenerator) legalRow(note *entity.PromissoryNote, issuer usecase.Issuer) core.Row {
	legal := fmt.Sprintf(
		"Ao dia %s, pagarei(emos) por esta única via de NOTA PROMISSÓRIA a %s, "+
			"a quantia de %s em moeda corrente deste país.",
		note.DueDate.Local().Format("02/01/2006"),
		issuer.Name,
		g.money(note),
	)
	return row.New(22).Add(
		col.New(12).Add(
			text.New(legal, props.Text{Size: 10, Top: 4, Color: colorInk}),
		),
	)
}

// detailsRow: emitente (foto del cliente) y referencia de ítems.
func detailsRow(note *entity.PromissoryNote) core.Row {
	itemsHeight := float64(14 + 5*len(note.Items))

	emitente := col.New(6).Add(
		text.New("EMITENTE", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 2}),
		text.New(note.CustomerName, props.Text{Style: fontstyle.Bold, Size: 11, Top: 7}),
		text.New(note.CustomerCPF, props.Text{Size: 9, Top: 13, Color: colorGray}),
		text.New(note.CustomerPhone, props.Text{Size: 9, Top: 18, Color: colorGray}),
	)

	referencia := []core.Component{
		text.New("REFERÊNCIA", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 2}),
	}
	top := 7.0
	for _, item := range note.Items {
		referencia = append(referencia, text.New(
			fmt.Sprintf("%dx %s", item.Quantity, item.Description),
			props.Text{Size: 9, Top: top},
		))
		top += 5
	}

	return row.New(itemsHeight).Add(emitente, col.New(6).Add(referencia...))
}

// footerRows: emisión + plaza (izq) y línea de firma (der).
func footerRows(note *entity.PromissoryNote, issuer usecase.Issuer) []core.Row {
	return []core.Row{
		row.New(12).Add(
			col.New(6).Add(
				text.New("Emissão: "+note.IssueDate.Local().Format("02/01/2006"),
					props.Text{Size: 8, Color: colorGray, Top: 4}),
				text.New("Local: "+issuer.City,
					props.Text{Size: 8, Color: colorGray, Top: 8}),
			),
			col.New(6).Add(
				text.New("________________________________",
					props.Text{Size: 10, Align: align.Center, Top: 4}),
				text.New("ASSINATURA",
					props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Center, Top: 9, Color: colorGray}),
			),
		),
	}
}

func (g *MarotoNoteGenerator) money(note *entity.PromissoryNote) string {
	return g.printer.Sprintf("R$ %.2f", note.TotalAmount.InexactFloat64())
}
