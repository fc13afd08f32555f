// Package whatsapp composes role-targeted outbound messages and wa.me
// deep links. Dispatch is delegated to the external messaging app via the
// returned link; nothing here performs network I/O.
package whatsapp

import (
	"errors"
	"fmt"
	"net/url"

	freightModel "github.com/kodraiti-design/eagles-transportes/models/freight"

	"github.com/kodraiti-design/eagles-transportes/utils"
)

// CountryCode is prefixed to every link. Both the driver- and
// client-facing paths use it; numbers stored with the prefix already are
// not double-prefixed.
const CountryCode = "55"

var (
	ErrNoDriver = errors.New("freight has no assigned driver")
	ErrNoPhone  = errors.New("no phone number on record")
)

// Link builds the wa.me deep link for a phone and message. The phone is
// stripped to digits and the message percent-encoded.
func Link(phone, message string) (string, error) {
	digits := utils.DigitsOnly(phone)
	if digits == "" {
		return "", ErrNoPhone
	}
	if len(digits) <= 11 {
		digits = CountryCode + digits
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message)), nil
}

// AcceptanceLink is the public driver self-service page embedded in offer
// messages.
func AcceptanceLink(baseURL string, freightID uint) string {
	return fmt.Sprintf("%s/driver-acceptance/%d", baseURL, freightID)
}

func orDash(s string) string {
	if s == "" {
		return "---"
	}
	return s
}

// DriverMessage renders the driver-facing text for the freight's current
// status. The freight must have an assigned driver.
func DriverMessage(f *freightModel.Freight, baseURL string) (string, error) {
	if f.Driver == nil {
		return "", ErrNoDriver
	}
	d := f.Driver
	plate := orDash(d.VehiclePlate)

	switch f.Status {
	case freightModel.FreightStatusQuoted, freightModel.FreightStatusRecruiting:
		return fmt.Sprintf(
			"Olá *%s*, aqui é da *Eagles Transportes*.\n\nTemos um frete *#%d* de *%s* para *%s*.\nValor: R$ %.2f.\n\nTem interesse? Acesse o link abaixo:\n\n%s",
			d.Name, f.ID, f.Origin, f.Destination, f.ValorMotorista, AcceptanceLink(baseURL, f.ID)), nil
	case freightModel.FreightStatusAssigned:
		return fmt.Sprintf(
			"Caminhão do seu frete de hoje *%s* já está disponível para carregamento na *%s*.\n\nEm breve, sua carga estará a caminho!",
			plate, f.Origin), nil
	case freightModel.FreightStatusInTransit:
		return fmt.Sprintf(
			"Nosso motorista *%s* chegou ao local de descarregamento.\n\nEm breve, a entrega será concluída.",
			d.Name), nil
	case freightModel.FreightStatusDelivered:
		return fmt.Sprintf(
			"Caminhão com motorista *%s* encerrou o descarregamento. Frete finalizado com sucesso, em breve você irá receber a documentação.\n\nAgradecemos a parceria na contratação dos nossos serviços. Estamos à disposição!",
			d.Name), nil
	default:
		return fmt.Sprintf("Olá *%s*, sobre o frete #%d...", d.Name, f.ID), nil
	}
}

// ClientMessage renders the client-facing text: pickup confirmation while
// in transit, delivery confirmation when delivered, and the driver
// credentials disclosure for any other status.
func ClientMessage(f *freightModel.Freight) (string, error) {
	if f.Driver == nil {
		return "", ErrNoDriver
	}
	d := f.Driver

	switch f.Status {
	case freightModel.FreightStatusInTransit:
		return fmt.Sprintf(
			"Bom dia!\n\nVeículo placa *%s* já se encontra no local de coleta em *%s*.\nIniciando carregamento.\n\nQualquer dúvida estou à disposição.",
			orDash(d.VehiclePlate), f.Origin), nil
	case freightModel.FreightStatusDelivered:
		return fmt.Sprintf(
			"Entrega realizada pelo motorista *%s*!\n\nObrigado pela preferência. A documentação será enviada em breve.",
			d.Name), nil
	default:
		return fmt.Sprintf(
			"*Mensagem Automática*\n\nA Eagles Transportes vem, por meio desta, informar os dados do motorista responsável pelo carregamento:\n\n*Motorista:* %s\n*CPF:* %s\n*ANTT:* %s\n*Placa do veículo:* %s\n\nEm caso de dúvidas, permanecemos à disposição para esclarecimentos.\n\nAtenciosamente,\n*Eagles Transportes*",
			d.Name, orDash(d.CPF), orDash(d.ANTT), orDash(d.VehiclePlate)), nil
	}
}

// DriverLink composes the driver-facing message and its deep link.
func DriverLink(f *freightModel.Freight, baseURL string) (string, error) {
	msg, err := DriverMessage(f, baseURL)
	if err != nil {
		return "", err
	}
	return Link(f.Driver.Phone, msg)
}

// ClientLink composes the client-facing message and its deep link.
func ClientLink(f *freightModel.Freight) (string, error) {
	msg, err := ClientMessage(f)
	if err != nil {
		return "", err
	}
	return Link(f.Client.Phone, msg)
}
