package documento

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/ConstrutoraVallim/api-gestao/internal/armazenamento"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type criarDocumentoRequest struct {
	DonoTipo     string `json:"donoTipo"`
	DonoID       uint   `json:"donoId"`
	Tipo         string `json:"tipo"`
	Nome         string `json:"nome"`
	Arquivo      string `json:"arquivo"` // data-URL base64; enviado ao S3
	DataValidade string `json:"dataValidade"`
}

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

// CriarDocumento envia o arquivo para o S3 e registra o documento.
func (h *Handler) CriarDocumento(w http.ResponseWriter, r *http.Request) {
	var req criarDocumentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.DonoTipo == "" || req.DonoID == 0 {
		http.Error(w, "donoTipo e donoId são obrigatórios", http.StatusBadRequest)
		return
	}

	var url string
	if req.Arquivo != "" {
		var err error
		url, err = armazenamento.UploadBase64(req.Arquivo, "documentos")
		if err != nil {
			http.Error(w, "erro ao enviar arquivo", http.StatusInternalServerError)
			return
		}
	}

	d := Documento{
		DonoType: req.DonoTipo,
		DonoID:   req.DonoID,
		Tipo:     req.Tipo,
		Nome:     req.Nome,
		URL:      url,
	}

	if req.DataValidade != "" {
		validade, err := time.Parse("2006-01-02", req.DataValidade)
		if err != nil {
			http.Error(w, "dataValidade inválida, use AAAA-MM-DD", http.StatusBadRequest)
			return
		}
		d.DataValidade = &validade
	}

	if err := h.Repository.Criar(h.DB, &d); err != nil {
		http.Error(w, "erro ao salvar documento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(d)
}

// ListarPorDono retorna os documentos de uma entidade (?donoTipo=&donoId=).
func (h *Handler) ListarPorDono(w http.ResponseWriter, r *http.Request) {
	donoTipo := r.URL.Query().Get("donoTipo")
	donoID, err := strconv.Atoi(r.URL.Query().Get("donoId"))
	if donoTipo == "" || err != nil {
		http.Error(w, "donoTipo e donoId são obrigatórios", http.StatusBadRequest)
		return
	}

	docs, err := h.Repository.ListarPorDono(h.DB, donoTipo, uint(donoID))
	if err != nil {
		http.Error(w, "erro ao listar documentos", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(docs)
}

// AtualizarDocumento altera tipo, nome e validade de um documento.
func (h *Handler) AtualizarDocumento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dados Documento
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		http.Error(w, "erro ao atualizar documento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("documento atualizado com sucesso"))
}

// DeletarDocumento remove um documento da entidade dona.
func (h *Handler) DeletarDocumento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir documento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("documento excluído com sucesso"))
}
