package conta

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/ConstrutoraVallim/api-gestao/internal/armazenamento"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type criarContaRequest struct {
	Descricao      string  `json:"descricao"`
	Valor          float64 `json:"valor"`
	DataVencimento string  `json:"dataVencimento"`
	Anexo          string  `json:"anexo"` // data-URL base64 opcional
	ObraID         *uint   `json:"obraId"`
	AlojamentoID   *uint   `json:"alojamentoId"`
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

// CriarConta cadastra uma conta a pagar avulsa
func (h *Handler) CriarConta(w http.ResponseWriter, r *http.Request) {
	var req criarContaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	vencimento, err := time.Parse("2006-01-02", req.DataVencimento)
	if err != nil {
		http.Error(w, "dataVencimento inválida, use AAAA-MM-DD", http.StatusBadRequest)
		return
	}

	c := Conta{
		Descricao:      req.Descricao,
		Valor:          req.Valor,
		DataVencimento: vencimento,
		Status:         StatusPendente,
		ObraID:         req.ObraID,
		AlojamentoID:   req.AlojamentoID,
	}

	if req.Anexo != "" {
		url, err := armazenamento.UploadBase64(req.Anexo, "contas")
		if err != nil {
			http.Error(w, "erro ao enviar anexo", http.StatusInternalServerError)
			return
		}
		c.Anexo = url
	}

	if err := h.Repository.Criar(h.DB, &c); err != nil {
		http.Error(w, "erro ao salvar conta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListarContas retorna todas as contas (?status=aberto filtra em aberto)
func (h *Handler) ListarContas(w http.ResponseWriter, r *http.Request) {
	// promove vencidas antes de listar, para o painel refletir a data atual
	if _, err := h.Repository.AtualizarVencidas(h.DB, time.Now()); err != nil {
		http.Error(w, "erro ao atualizar contas vencidas", http.StatusInternalServerError)
		return
	}

	var (
		contas []Conta
		err    error
	)
	if r.URL.Query().Get("status") == "aberto" {
		contas, err = h.Repository.ListarEmAberto(h.DB)
	} else {
		contas, err = h.Repository.ListarTodas(h.DB)
	}
	if err != nil {
		http.Error(w, "erro ao listar contas", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(contas)
}

// BuscarPorID retorna uma conta pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "conta não encontrada", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(obj)
}

// AtualizarConta altera dados de uma conta existente
func (h *Handler) AtualizarConta(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dados Conta
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		http.Error(w, "erro ao atualizar conta", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("conta atualizada com sucesso"))
}

// PagarConta marca a conta como paga na data de hoje
func (h *Handler) PagarConta(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.MarcarComoPaga(h.DB, uint(id), time.Now()); err != nil {
		http.Error(w, "erro ao registrar pagamento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pagamento registrado com sucesso"))
}

// DeletarConta remove uma conta
func (h *Handler) DeletarConta(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir conta", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("conta excluída com sucesso"))
}
