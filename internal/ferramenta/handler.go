package ferramenta

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

// CriarFerramenta cadastra um item do almoxarifado
func (h *Handler) CriarFerramenta(w http.ResponseWriter, r *http.Request) {
	var f Ferramenta
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Criar(h.DB, &f); err != nil {
		http.Error(w, "erro ao salvar ferramenta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(f)
}

// ListarFerramentas retorna o inventário (?obraId= filtra por obra)
func (h *Handler) ListarFerramentas(w http.ResponseWriter, r *http.Request) {
	var (
		ferramentas []Ferramenta
		err         error
	)
	if obraParam := r.URL.Query().Get("obraId"); obraParam != "" {
		obraID, convErr := strconv.Atoi(obraParam)
		if convErr != nil {
			http.Error(w, "obraId inválido", http.StatusBadRequest)
			return
		}
		ferramentas, err = h.Repository.ListarPorObra(h.DB, uint(obraID))
	} else {
		ferramentas, err = h.Repository.ListarTodas(h.DB)
	}
	if err != nil {
		http.Error(w, "erro ao listar ferramentas", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(ferramentas)
}

// BuscarPorID retorna uma ferramenta pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "ferramenta não encontrada", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(obj)
}

// AtualizarFerramenta altera dados de uma ferramenta existente
func (h *Handler) AtualizarFerramenta(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dados Ferramenta
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		http.Error(w, "erro ao atualizar ferramenta", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ferramenta atualizada com sucesso"))
}

// AlocarNaObra move a ferramenta para a obra informada (null devolve ao
// almoxarifado central)
func (h *Handler) AlocarNaObra(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req struct {
		ObraID *uint `json:"obraId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "ferramenta não encontrada", http.StatusNotFound)
		return
	}

	obj.ObraID = req.ObraID
	if err := h.Repository.Atualizar(h.DB, obj.ID, obj); err != nil {
		http.Error(w, "erro ao alocar ferramenta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(obj)
}

// DeletarFerramenta remove uma ferramenta
func (h *Handler) DeletarFerramenta(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir ferramenta", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ferramenta excluída com sucesso"))
}
