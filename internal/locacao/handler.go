package locacao

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ConstrutoraVallim/api-gestao/internal/conta"
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

// CriarLocacao cadastra uma nova locação de equipamento
func (h *Handler) CriarLocacao(w http.ResponseWriter, r *http.Request) {
	var l Locacao
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Criar(h.DB, &l); err != nil {
		http.Error(w, "erro ao salvar locação", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(l)
}

// ListarLocacoes retorna as locações já com a situação de vencimento
func (h *Handler) ListarLocacoes(w http.ResponseWriter, r *http.Request) {
	locacoes, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar locações", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(MontarSituacoes(locacoes, time.Now()))
}

// BuscarPorID retorna uma locação pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "locação não encontrada", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(obj)
}

// AtualizarLocacao altera dados de uma locação existente
func (h *Handler) AtualizarLocacao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dados Locacao
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		http.Error(w, "erro ao atualizar locação", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("locação atualizada com sucesso"))
}

// GerarConta cria a conta a pagar da locação. A partir daí a obrigação
// aparece no painel de alertas pela conta, nunca pela locação.
func (h *Handler) GerarConta(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "locação não encontrada", http.StatusNotFound)
		return
	}

	contaRepo := conta.NewRepository()
	jaExiste, err := contaRepo.ExistePorLocacao(h.DB, obj.ID)
	if err != nil {
		http.Error(w, "erro ao verificar contas da locação", http.StatusInternalServerError)
		return
	}
	if jaExiste {
		http.Error(w, "locação já possui conta gerada", http.StatusConflict)
		return
	}

	locacaoID := obj.ID
	nova := conta.Conta{
		Descricao:      fmt.Sprintf("Aluguel %s - %s", obj.Equipamento, obj.Fornecedor),
		Valor:          obj.ValorMensal,
		DataVencimento: obj.DataVencimento,
		Status:         conta.StatusPendente,
		ObraID:         obj.ObraID,
		LocacaoID:      &locacaoID,
	}
	if err := contaRepo.Criar(h.DB, &nova); err != nil {
		http.Error(w, "erro ao gerar conta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(nova)
}

// DeletarLocacao remove uma locação
func (h *Handler) DeletarLocacao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir locação", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("locação excluída com sucesso"))
}
