package alojamento

import (
	"encoding/json"
	"io"
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

// CriarAlojamento cadastra um novo alojamento
func (h *Handler) CriarAlojamento(w http.ResponseWriter, r *http.Request) {
	var a Alojamento
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Criar(h.DB, &a); err != nil {
		http.Error(w, "erro ao salvar alojamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

// ListarAlojamentos retorna todos os alojamentos com documentos
func (h *Handler) ListarAlojamentos(w http.ResponseWriter, r *http.Request) {
	alojamentos, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar alojamentos", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(alojamentos)
}

// BuscarPorID retorna um alojamento pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "alojamento não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(obj)
}

// AtualizarAlojamento altera dados de um alojamento existente
func (h *Handler) AtualizarAlojamento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dados Alojamento
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		http.Error(w, "erro ao atualizar alojamento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("alojamento atualizado com sucesso"))
}

// GerarContas materializa as contas recorrentes do alojamento para a
// competência informada ({"competencia": "2024-06"}; vazio usa o mês atual).
func (h *Handler) GerarContas(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req struct {
		Competencia string `json:"competencia"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	competencia := time.Now()
	if req.Competencia != "" {
		competencia, err = time.Parse("2006-01", req.Competencia)
		if err != nil {
			http.Error(w, "competência inválida, use AAAA-MM", http.StatusBadRequest)
			return
		}
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "alojamento não encontrado", http.StatusNotFound)
		return
	}

	contas := MontarContasDaCompetencia(*obj, competencia)
	contaRepo := conta.NewRepository()
	for i := range contas {
		if err := contaRepo.Criar(h.DB, &contas[i]); err != nil {
			http.Error(w, "erro ao gerar contas", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(contas)
}

// DeletarAlojamento remove um alojamento
func (h *Handler) DeletarAlojamento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir alojamento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("alojamento excluído com sucesso"))
}
