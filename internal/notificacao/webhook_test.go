package notificacao

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ConstrutoraVallim/api-gestao/internal/alerta"
)

func alertaCom(severidade alerta.Severidade) alerta.Alerta {
	return alerta.Alerta{
		Categoria:     "Obra",
		Tipo:          "ART",
		Mensagem:      "Obra Central",
		Data:          time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC),
		Classificacao: alerta.Classificacao{Severidade: severidade},
	}
}

func TestEnviarWebhookVencidos_SoVencidosEntramNoPayload(t *testing.T) {
	var recebido map[string]interface{}
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		corpo, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(corpo, &recebido))
	}))
	defer servidor.Close()
	t.Setenv("WEBHOOK_ALERTAS_URL", servidor.URL)

	EnviarWebhookVencidos([]alerta.Alerta{
		alertaCom(alerta.SeveridadeVencido),
		alertaCom(alerta.SeveridadeUrgente),
		alertaCom(alerta.SeveridadeEmDia),
	})

	require.NotNil(t, recebido)
	assert.Equal(t, float64(1), recebido["total"])
}

func TestEnviarWebhookVencidos_SemVencidosNaoChama(t *testing.T) {
	chamado := false
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chamado = true
	}))
	defer servidor.Close()
	t.Setenv("WEBHOOK_ALERTAS_URL", servidor.URL)

	EnviarWebhookVencidos([]alerta.Alerta{alertaCom(alerta.SeveridadeAviso)})
	assert.False(t, chamado)
}

func TestEnviarWebhookVencidos_RespostaDeErroEhLogada(t *testing.T) {
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "receptor indisponível", http.StatusBadGateway)
	}))
	defer servidor.Close()
	t.Setenv("WEBHOOK_ALERTAS_URL", servidor.URL)

	original := log.Writer()
	var saida bytes.Buffer
	log.SetOutput(&saida)
	defer log.SetOutput(original)

	EnviarWebhookVencidos([]alerta.Alerta{alertaCom(alerta.SeveridadeVencido)})
	assert.Contains(t, saida.String(), "respondeu 502")
}
