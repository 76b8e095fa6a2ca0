package dashboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ConstrutoraVallim/api-gestao/internal/alerta"
	"github.com/ConstrutoraVallim/api-gestao/internal/alojamento"
	"github.com/ConstrutoraVallim/api-gestao/internal/colaborador"
	"github.com/ConstrutoraVallim/api-gestao/internal/conta"
	"github.com/ConstrutoraVallim/api-gestao/internal/notificacao"
	"github.com/ConstrutoraVallim/api-gestao/internal/obra"
	"github.com/ConstrutoraVallim/api-gestao/internal/veiculo"

	"gorm.io/gorm"
)

// Handler carrega as coleções e entrega a lista única do painel. O relógio
// só entra aqui: o agregador em si recebe "hoje" como parâmetro.
type Handler struct {
	DB *gorm.DB

	Obras         obra.Repository
	Colaboradores colaborador.Repository
	Veiculos      veiculo.Repository
	Alojamentos   alojamento.Repository
	Contas        conta.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:            db,
		Obras:         obra.NewRepository(),
		Colaboradores: colaborador.NewRepository(),
		Veiculos:      veiculo.NewRepository(),
		Alojamentos:   alojamento.NewRepository(),
		Contas:        conta.NewRepository(),
	}
}

func (h *Handler) carregarFontes() ([]alerta.FonteDocumentos, []conta.Conta, []colaborador.Colaborador, error) {
	obras, err := h.Obras.ListarTodas(h.DB)
	if err != nil {
		return nil, nil, nil, err
	}
	colaboradores, err := h.Colaboradores.ListarTodos(h.DB)
	if err != nil {
		return nil, nil, nil, err
	}
	veiculos, err := h.Veiculos.ListarTodos(h.DB)
	if err != nil {
		return nil, nil, nil, err
	}
	alojamentos, err := h.Alojamentos.ListarTodos(h.DB)
	if err != nil {
		return nil, nil, nil, err
	}

	if _, err := h.Contas.AtualizarVencidas(h.DB, time.Now()); err != nil {
		return nil, nil, nil, err
	}
	contas, err := h.Contas.ListarEmAberto(h.DB)
	if err != nil {
		return nil, nil, nil, err
	}

	var fontes []alerta.FonteDocumentos
	for _, o := range obras {
		fontes = append(fontes, alerta.FonteDocumentos{
			Categoria:  "Obra",
			Nome:       o.Nome,
			Rota:       fmt.Sprintf("/obras/%d", o.ID),
			Documentos: o.Documentos,
		})
	}
	for _, c := range colaboradores {
		fontes = append(fontes, alerta.FonteDocumentos{
			Categoria:  "Colaborador",
			Nome:       c.Nome,
			Rota:       fmt.Sprintf("/colaboradores/%d", c.ID),
			Documentos: c.Documentos,
		})
	}
	for _, v := range veiculos {
		fontes = append(fontes, alerta.FonteDocumentos{
			Categoria:  "Veículo",
			Nome:       v.Placa,
			Rota:       fmt.Sprintf("/veiculos/%d", v.ID),
			Documentos: v.Documentos,
		})
	}
	for _, a := range alojamentos {
		fontes = append(fontes, alerta.FonteDocumentos{
			Categoria:  "Alojamento",
			Nome:       a.Nome,
			Rota:       fmt.Sprintf("/alojamentos/%d", a.ID),
			Documentos: a.Documentos,
		})
	}

	return fontes, contas, colaboradores, nil
}

// ListarAlertas é o endpoint do painel: GET /dashboard/alertas
func (h *Handler) ListarAlertas(w http.ResponseWriter, r *http.Request) {
	fontes, contas, colaboradores, err := h.carregarFontes()
	if err != nil {
		http.Error(w, "erro ao carregar dados do painel", http.StatusInternalServerError)
		return
	}

	alertas := alerta.Agregar(fontes, contas, colaboradores, time.Now())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(alertas)
}

// EnviarResumo agrega o painel e dispara o resumo por e-mail e o webhook
// de vencidos. POST /dashboard/alertas/enviar-resumo (admin).
func (h *Handler) EnviarResumo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		http.Error(w, "e-mail de destino é obrigatório", http.StatusBadRequest)
		return
	}

	fontes, contas, colaboradores, err := h.carregarFontes()
	if err != nil {
		http.Error(w, "erro ao carregar dados do painel", http.StatusInternalServerError)
		return
	}

	alertas := alerta.Agregar(fontes, contas, colaboradores, time.Now())

	go notificacao.EnviarWebhookVencidos(alertas)

	if err := notificacao.EnviarResumoPorEmail(req.Email, alertas); err != nil {
		http.Error(w, "erro ao enviar resumo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"totalAlertas": len(alertas)})
}
