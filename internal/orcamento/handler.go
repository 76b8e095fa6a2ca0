package orcamento

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// CriarOrcamento cadastra uma proposta; o total é sempre recalculado no
// servidor a partir das linhas.
func (h *Handler) CriarOrcamento(w http.ResponseWriter, r *http.Request) {
	var o Orcamento
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	o.ValorTotal = CalcularValorTotal(o.Itens)
	if o.Status == "" {
		o.Status = StatusPendente
	}

	if err := h.Repository.Criar(h.DB, &o); err != nil {
		http.Error(w, "erro ao salvar orçamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(o)
}

// ListarOrcamentos retorna todas as propostas
func (h *Handler) ListarOrcamentos(w http.ResponseWriter, r *http.Request) {
	orcamentos, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar orçamentos", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(orcamentos)
}

// BuscarPorID retorna um orçamento pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "orçamento não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(obj)
}

// AtualizarOrcamento altera uma proposta existente
func (h *Handler) AtualizarOrcamento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dados Orcamento
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		http.Error(w, "erro ao atualizar orçamento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("orçamento atualizado com sucesso"))
}

// MudarStatus aprova ou recusa uma proposta
func (h *Handler) MudarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Status != StatusAprovado && req.Status != StatusRecusado && req.Status != StatusPendente {
		http.Error(w, "status inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.AtualizarStatus(h.DB, uint(id), req.Status); err != nil {
		http.Error(w, "erro ao atualizar status", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("status atualizado com sucesso"))
}

// DeletarOrcamento remove uma proposta
func (h *Handler) DeletarOrcamento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir orçamento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("orçamento excluído com sucesso"))
}
