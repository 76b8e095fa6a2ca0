package notafiscal

import (
	"encoding/json"
	"fmt"
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

// CriarNota registra uma nota fiscal emitida
func (h *Handler) CriarNota(w http.ResponseWriter, r *http.Request) {
	var n NotaFiscal
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	n.ValorTotal = CalcularValorTotal(n.Itens)

	if err := h.Repository.Criar(h.DB, &n); err != nil {
		http.Error(w, "erro ao salvar nota fiscal", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(n)
}

// ListarNotas retorna as notas emitidas (?obraId= filtra por obra)
func (h *Handler) ListarNotas(w http.ResponseWriter, r *http.Request) {
	var (
		notas []NotaFiscal
		err   error
	)
	if obraParam := r.URL.Query().Get("obraId"); obraParam != "" {
		obraID, convErr := strconv.Atoi(obraParam)
		if convErr != nil {
			http.Error(w, "obraId inválido", http.StatusBadRequest)
			return
		}
		notas, err = h.Repository.ListarPorObra(h.DB, uint(obraID))
	} else {
		notas, err = h.Repository.ListarTodas(h.DB)
	}
	if err != nil {
		http.Error(w, "erro ao listar notas fiscais", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(notas)
}

// BuscarPorID retorna uma nota pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "nota fiscal não encontrada", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(obj)
}

// BaixarPDF devolve o espelho da nota em PDF
func (h *Handler) BaixarPDF(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "nota fiscal não encontrada", http.StatusNotFound)
		return
	}

	conteudo, err := GerarPDF(*obj)
	if err != nil {
		http.Error(w, "erro ao gerar PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="nota-%s.pdf"`, obj.Numero))
	w.Write(conteudo)
}

// AtualizarNota altera uma nota existente
func (h *Handler) AtualizarNota(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dados NotaFiscal
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		http.Error(w, "erro ao atualizar nota fiscal", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("nota fiscal atualizada com sucesso"))
}

// DeletarNota remove uma nota
func (h *Handler) DeletarNota(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir nota fiscal", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("nota fiscal excluída com sucesso"))
}
