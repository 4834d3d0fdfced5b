// Package whatsapp construye deep links de cobro hacia el servicio de
// mensajería. La integración es de una sola vía: se genera la URL y el
// entorno anfitrión la abre; no se espera confirmación de entrega.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/iwr-crediario/internal/domain"
	"github.com/jhoicas/iwr-crediario/internal/domain/entity"
)

// DefaultBaseURL servicio de deep links de WhatsApp.
const DefaultBaseURL = "https://wa.me"

// LinkBuilder genera enlaces de cobro con el mensaje pt-BR de la tienda.
type LinkBuilder struct {
	baseURL   string
	storeName string
	printer   *message.Printer
}

// NewLinkBuilder construye el builder. baseURL vacío usa DefaultBaseURL.
func NewLinkBuilder(baseURL, storeName string) *LinkBuilder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &LinkBuilder{
		baseURL:   strings.TrimRight(baseURL, "/"),
		storeName: storeName,
		printer:   message.NewPrinter(language.BrazilianPortuguese),
	}
}

// ChargeLink devuelve la URL `<base>/<dígitos>?text=<mensaje urlencoded>`
// con el recordatorio de cobro de la nota. Falla con ErrInvalidInput si la
// nota no tiene teléfono utilizable.
func (b *LinkBuilder) ChargeLink(note *entity.PromissoryNote) (string, error) {
	phone := sanitizePhone(note.CustomerPhone)
	if phone == "" {
		return "", fmt.Errorf("%w: la nota %s no tiene teléfono", domain.ErrInvalidInput, note.ID)
	}
	return b.baseURL + "/" + phone + "?text=" + url.QueryEscape(b.ReminderMessage(note)), nil
}

// ReminderMessage mensaje de cobro pt-BR con nombre, número de nota,
// monto y vencimiento.
func (b *LinkBuilder) ReminderMessage(note *entity.PromissoryNote) string {
	return fmt.Sprintf(
		"Olá %s, aqui é da *%s*. \n\n"+
			"Estamos entrando em contato referente à sua nota promissória *#%s* "+
			"no valor de *%s* com vencimento em *%s*.\n\n"+
			"Para facilitar, você pode efetuar o pagamento via PIX ou em nossa loja. \n\n"+
			"Qualquer dúvida estamos à disposição!",
		note.CustomerName,
		b.storeName,
		note.ID,
		b.FormatMoney(note.TotalAmount.InexactFloat64()),
		note.DueDate.Local().Format("02/01/2006"),
	)
}

// FormatMoney formatea un monto como moneda pt-BR, ej. "R$ 1.234,56".
func (b *LinkBuilder) FormatMoney(amount float64) string {
	return b.printer.Sprintf("R$ %.2f", amount)
}

// sanitizePhone deja solo dígitos y antepone el código de país 55 si falta
// (el deep link exige código de país + número, sin puntuación; los clientes
// suelen registrarse con el número en formato local).
func sanitizePhone(phone string) string {
	var sb strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	digits := sb.String()
	if digits == "" {
		return ""
	}
	if !strings.HasPrefix(digits, "55") {
		digits = "55" + digits
	}
	return digits
}
