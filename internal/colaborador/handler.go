package colaborador

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

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

// CriarColaborador cadastra um novo colaborador
func (h *Handler) CriarColaborador(w http.ResponseWriter, r *http.Request) {
	var c Colaborador
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if c.Status == "" {
		c.Status = StatusAtivo
	}

	if err := h.Repository.Criar(h.DB, &c); err != nil {
		http.Error(w, "erro ao salvar colaborador", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListarColaboradores retorna todos os colaboradores (?status=Ativo filtra)
func (h *Handler) ListarColaboradores(w http.ResponseWriter, r *http.Request) {
	var (
		colaboradores []Colaborador
		err           error
	)
	if r.URL.Query().Get("status") == StatusAtivo {
		colaboradores, err = h.Repository.ListarAtivos(h.DB)
	} else {
		colaboradores, err = h.Repository.ListarTodos(h.DB)
	}
	if err != nil {
		http.Error(w, "erro ao listar colaboradores", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(colaboradores)
}

// BuscarPorID retorna um colaborador pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "colaborador não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(obj)
}

// AtualizarColaborador altera dados de um colaborador existente
func (h *Handler) AtualizarColaborador(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dados Colaborador
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		http.Error(w, "erro ao atualizar colaborador", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("colaborador atualizado com sucesso"))
}

// RegistrarFerias marca o gozo de férias e empurra o próximo vencimento
// do período concessivo em um ano.
func (h *Handler) RegistrarFerias(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "colaborador não encontrado", http.StatusNotFound)
		return
	}

	var base time.Time
	if obj.DataFeriasVencimento != nil {
		base = *obj.DataFeriasVencimento
	} else {
		base = time.Now()
	}
	proximo := base.AddDate(1, 0, 0)
	obj.DataFeriasVencimento = &proximo

	if err := h.Repository.Atualizar(h.DB, obj.ID, obj); err != nil {
		http.Error(w, "erro ao registrar férias", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(obj)
}

// DeletarColaborador remove um colaborador
func (h *Handler) DeletarColaborador(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir colaborador", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("colaborador excluído com sucesso"))
}
