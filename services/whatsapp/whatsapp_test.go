package whatsapp

import (
	"strings"
	"testing"

	clientModel "github.com/kodraiti-design/eagles-transportes/models/client"
	driverModel "github.com/kodraiti-design/eagles-transportes/models/driver"
	freightModel "github.com/kodraiti-design/eagles-transportes/models/freight"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFreight(status freightModel.FreightStatus) *freightModel.Freight {
	driverID := uint(9)
	return &freightModel.Freight{
		ID:             42,
		Status:         status,
		Origin:         "Cuiabá - MT",
		Destination:    "São Paulo - SP",
		ValorMotorista: 8500,
		ValorCliente:   12000,
		DriverID:       &driverID,
		Driver: &driverModel.Driver{
			Name:         "João Silva",
			Phone:        "(65) 99999-1234",
			CPF:          "123.456.789-00",
			ANTT:         "12345678",
			VehiclePlate: "ABC1D23",
		},
		Client: clientModel.Client{
			Name:  "Agro Center",
			Phone: "65 98888-0000",
		},
	}
}

func TestLinkPrefixesCountryCode(t *testing.T) {
	link, err := Link("(65) 99999-1234", "olá")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/5565999991234?text="), link)
}

func TestLinkKeepsExistingCountryCode(t *testing.T) {
	link, err := Link("+55 65 99999-1234", "olá")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/5565999991234?text="), link)
}

func TestLinkEncodesMessage(t *testing.T) {
	link, err := Link("65999991234", "Frete #42: R$ 1.500,00 & confirmação")
	require.NoError(t, err)
	assert.NotContains(t, link, " ")
	assert.NotContains(t, link, "&c")
	assert.Contains(t, link, "text=")
}

func TestLinkEmptyPhone(t *testing.T) {
	_, err := Link("", "olá")
	assert.ErrorIs(t, err, ErrNoPhone)

	_, err = Link("abc-def", "olá")
	assert.ErrorIs(t, err, ErrNoPhone)
}

func TestAcceptanceLink(t *testing.T) {
	assert.Equal(t, "https://app.example.com/driver-acceptance/42",
		AcceptanceLink("https://app.example.com", 42))
}

func TestDriverMessagePerStatus(t *testing.T) {
	base := "https://app.example.com"

	offer, err := DriverMessage(testFreight(freightModel.FreightStatusQuoted), base)
	require.NoError(t, err)
	assert.Contains(t, offer, "João Silva")
	assert.Contains(t, offer, "#42")
	assert.Contains(t, offer, "Cuiabá - MT")
	assert.Contains(t, offer, "8500.00")
	assert.Contains(t, offer, AcceptanceLink(base, 42))

	recruiting, err := DriverMessage(testFreight(freightModel.FreightStatusRecruiting), base)
	require.NoError(t, err)
	assert.Equal(t, offer, recruiting)

	assigned, err := DriverMessage(testFreight(freightModel.FreightStatusAssigned), base)
	require.NoError(t, err)
	assert.Contains(t, assigned, "ABC1D23")
	assert.Contains(t, assigned, "carregamento")

	inTransit, err := DriverMessage(testFreight(freightModel.FreightStatusInTransit), base)
	require.NoError(t, err)
	assert.Contains(t, inTransit, "descarregamento")

	delivered, err := DriverMessage(testFreight(freightModel.FreightStatusDelivered), base)
	require.NoError(t, err)
	assert.Contains(t, delivered, "finalizado")
}

func TestDriverMessageNoDriver(t *testing.T) {
	f := testFreight(freightModel.FreightStatusQuoted)
	f.Driver = nil
	_, err := DriverMessage(f, "https://app.example.com")
	assert.ErrorIs(t, err, ErrNoDriver)
}

func TestClientMessagePerStatus(t *testing.T) {
	pickup, err := ClientMessage(testFreight(freightModel.FreightStatusInTransit))
	require.NoError(t, err)
	assert.Contains(t, pickup, "ABC1D23")
	assert.Contains(t, pickup, "local de coleta")
	assert.Contains(t, pickup, "Cuiabá - MT")

	delivery, err := ClientMessage(testFreight(freightModel.FreightStatusDelivered))
	require.NoError(t, err)
	assert.Contains(t, delivery, "Entrega realizada")
	assert.Contains(t, delivery, "João Silva")

	// Any other status discloses the driver credentials.
	data, err := ClientMessage(testFreight(freightModel.FreightStatusAssigned))
	require.NoError(t, err)
	assert.Contains(t, data, "123.456.789-00")
	assert.Contains(t, data, "ANTT")
	assert.Contains(t, data, "ABC1D23")
}

func TestClientMessageDashForMissingFields(t *testing.T) {
	f := testFreight(freightModel.FreightStatusAssigned)
	f.Driver.ANTT = ""
	f.Driver.VehiclePlate = ""
	msg, err := ClientMessage(f)
	require.NoError(t, err)
	assert.Contains(t, msg, "---")
}

func TestDriverAndClientLinks(t *testing.T) {
	f := testFreight(freightModel.FreightStatusInTransit)

	driverLink, err := DriverLink(f, "https://app.example.com")
	require.NoError(t, err)
	assert.Contains(t, driverLink, "wa.me/5565999991234")

	clientLink, err := ClientLink(f)
	require.NoError(t, err)
	assert.Contains(t, clientLink, "wa.me/5565988880000")

	f.Driver = nil
	_, err = DriverLink(f, "https://app.example.com")
	assert.ErrorIs(t, err, ErrNoDriver)
	_, err = ClientLink(f)
	assert.ErrorIs(t, err, ErrNoDriver)
}
