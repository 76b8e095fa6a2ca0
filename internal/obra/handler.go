package obra

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ConstrutoraVallim/api-gestao/internal/armazenamento"
	"github.com/ConstrutoraVallim/api-gestao/internal/colaborador"
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

// CriarObra cadastra uma nova obra
func (h *Handler) CriarObra(w http.ResponseWriter, r *http.Request) {
	var o Obra
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Criar(h.DB, &o); err != nil {
		http.Error(w, "erro ao salvar obra", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(o)
}

// ListarObras retorna todas as obras com seus documentos
func (h *Handler) ListarObras(w http.ResponseWriter, r *http.Request) {
	obras, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar obras", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(obras)
}

// BuscarPorID retorna uma obra pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "obra não encontrada", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(obj)
}

// AtualizarObra altera dados de uma obra existente
func (h *Handler) AtualizarObra(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dados Obra
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		http.Error(w, "erro ao atualizar obra", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("obra atualizada com sucesso"))
}

// DeletarObra remove uma obra
func (h *Handler) DeletarObra(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir obra", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("obra excluída com sucesso"))
}

// AdicionarFoto envia uma foto do canteiro para o S3 e anexa à obra.
func (h *Handler) AdicionarFoto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req struct {
		Arquivo string `json:"arquivo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Arquivo == "" {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "obra não encontrada", http.StatusNotFound)
		return
	}

	url, err := armazenamento.UploadBase64(req.Arquivo, "fotos-obra")
	if err != nil {
		http.Error(w, "erro ao enviar foto", http.StatusInternalServerError)
		return
	}

	obj.Fotos = append(obj.Fotos, url)
	if err := h.Repository.Atualizar(h.DB, obj.ID, obj); err != nil {
		http.Error(w, "erro ao salvar obra", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}

// ObterResumoObra constrói e retorna o DTO de resumo
func (h *Handler) ObterResumoObra(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "obra não encontrada", http.StatusNotFound)
		return
	}

	contas, _ := conta.NewRepository().ListarPorObra(h.DB, obj.ID)
	colaboradores, _ := colaborador.NewRepository().ListarPorObra(h.DB, obj.ID)
	dto := MontarResumoObraDTO(*obj, contas, colaboradores)

	json.NewEncoder(w).Encode(dto)
}
