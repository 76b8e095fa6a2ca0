package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/ConstrutoraVallim/api-gestao/internal/alojamento"
	"github.com/ConstrutoraVallim/api-gestao/internal/armazenamento"
	"github.com/ConstrutoraVallim/api-gestao/internal/auth"
	"github.com/ConstrutoraVallim/api-gestao/internal/colaborador"
	"github.com/ConstrutoraVallim/api-gestao/internal/conta"
	"github.com/ConstrutoraVallim/api-gestao/internal/dashboard"
	"github.com/ConstrutoraVallim/api-gestao/internal/documento"
	"github.com/ConstrutoraVallim/api-gestao/internal/ferramenta"
	"github.com/ConstrutoraVallim/api-gestao/internal/locacao"
	"github.com/ConstrutoraVallim/api-gestao/internal/notafiscal"
	"github.com/ConstrutoraVallim/api-gestao/internal/obra"
	"github.com/ConstrutoraVallim/api-gestao/internal/orcamento"
	"github.com/ConstrutoraVallim/api-gestao/internal/usuario"
	"github.com/ConstrutoraVallim/api-gestao/internal/utils/db"
	"github.com/ConstrutoraVallim/api-gestao/internal/veiculo"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("arquivo .env não encontrado, usando variáveis do ambiente")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&usuario.Usuario{},
		&obra.Obra{},
		&colaborador.Colaborador{},
		&veiculo.Veiculo{},
		&alojamento.Alojamento{},
		&documento.Documento{},
		&conta.Conta{},
		&locacao.Locacao{},
		&ferramenta.Ferramenta{},
		&orcamento.Orcamento{},
		&notafiscal.NotaFiscal{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	armazenamento.InitS3()

	// Handlers
	usuarioHandler := usuario.NewHandler(database)
	obraHandler := obra.NewHandler(database)
	colaboradorHandler := colaborador.NewHandler(database)
	veiculoHandler := veiculo.NewHandler(database)
	alojamentoHandler := alojamento.NewHandler(database)
	documentoHandler := documento.NewHandler(database)
	contaHandler := conta.NewHandler(database)
	locacaoHandler := locacao.NewHandler(database)
	ferramentaHandler := ferramenta.NewHandler(database)
	orcamentoHandler := orcamento.NewHandler(database)
	notaHandler := notafiscal.NewHandler(database)
	dashboardHandler := dashboard.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/redefinir-senha", usuarioHandler.RedefinirSenha).Methods("POST")

	// Rotas autenticadas
	s := r.PathPrefix("/").Subrouter()
	s.Use(auth.MiddlewareAutenticacao)

	// Usuários do painel
	s.Handle("/usuarios", auth.RequireAdmin(http.HandlerFunc(usuarioHandler.CriarUsuario))).Methods("POST")
	s.HandleFunc("/usuarios", usuarioHandler.ListarUsuarios).Methods("GET")
	s.HandleFunc("/usuarios/me", usuarioHandler.Me).Methods("GET")
	s.HandleFunc("/usuarios/{id}", usuarioHandler.BuscarPorID).Methods("GET")
	s.HandleFunc("/usuarios/{id}", usuarioHandler.AtualizarUsuario).Methods("PUT")
	s.HandleFunc("/usuarios/{id}", usuarioHandler.DeletarUsuario).Methods("DELETE")

	// Rotas de obras
	s.HandleFunc("/obras", obraHandler.CriarObra).Methods("POST")
	s.HandleFunc("/obras", obraHandler.ListarObras).Methods("GET")
	s.HandleFunc("/obras/{id}", obraHandler.BuscarPorID).Methods("GET")
	s.HandleFunc("/obras/{id}", obraHandler.AtualizarObra).Methods("PUT")
	s.Handle("/obras/{id}", auth.RequireAdmin(http.HandlerFunc(obraHandler.DeletarObra))).Methods("DELETE")
	s.HandleFunc("/obras/{id}/resumo", obraHandler.ObterResumoObra).Methods("GET")
	s.HandleFunc("/obras/{id}/fotos", obraHandler.AdicionarFoto).Methods("POST")

	// Rotas de colaboradores
	s.HandleFunc("/colaboradores", colaboradorHandler.CriarColaborador).Methods("POST")
	s.HandleFunc("/colaboradores", colaboradorHandler.ListarColaboradores).Methods("GET")
	s.HandleFunc("/colaboradores/{id}", colaboradorHandler.BuscarPorID).Methods("GET")
	s.HandleFunc("/colaboradores/{id}", colaboradorHandler.AtualizarColaborador).Methods("PUT")
	s.Handle("/colaboradores/{id}", auth.RequireAdmin(http.HandlerFunc(colaboradorHandler.DeletarColaborador))).Methods("DELETE")
	s.HandleFunc("/colaboradores/{id}/ferias", colaboradorHandler.RegistrarFerias).Methods("POST")

	// Rotas de veículos
	s.HandleFunc("/veiculos", veiculoHandler.CriarVeiculo).Methods("POST")
	s.HandleFunc("/veiculos", veiculoHandler.ListarVeiculos).Methods("GET")
	s.HandleFunc("/veiculos/{id}", veiculoHandler.BuscarPorID).Methods("GET")
	s.HandleFunc("/veiculos/{id}", veiculoHandler.AtualizarVeiculo).Methods("PUT")
	s.Handle("/veiculos/{id}", auth.RequireAdmin(http.HandlerFunc(veiculoHandler.DeletarVeiculo))).Methods("DELETE")

	// Rotas de alojamentos
	s.HandleFunc("/alojamentos", alojamentoHandler.CriarAlojamento).Methods("POST")
	s.HandleFunc("/alojamentos", alojamentoHandler.ListarAlojamentos).Methods("GET")
	s.HandleFunc("/alojamentos/{id}", alojamentoHandler.BuscarPorID).Methods("GET")
	s.HandleFunc("/alojamentos/{id}", alojamentoHandler.AtualizarAlojamento).Methods("PUT")
	s.Handle("/alojamentos/{id}", auth.RequireAdmin(http.HandlerFunc(alojamentoHandler.DeletarAlojamento))).Methods("DELETE")
	s.HandleFunc("/alojamentos/{id}/gerar-contas", alojamentoHandler.GerarContas).Methods("POST")

	// Rotas de documentos
	s.HandleFunc("/documentos", documentoHandler.CriarDocumento).Methods("POST")
	s.HandleFunc("/documentos", documentoHandler.ListarPorDono).Methods("GET")
	s.HandleFunc("/documentos/{id}", documentoHandler.AtualizarDocumento).Methods("PUT")
	s.HandleFunc("/documentos/{id}", documentoHandler.DeletarDocumento).Methods("DELETE")

	// Rotas de contas a pagar
	s.HandleFunc("/contas", contaHandler.CriarConta).Methods("POST")
	s.HandleFunc("/contas", contaHandler.ListarContas).Methods("GET")
	s.HandleFunc("/contas/{id}", contaHandler.BuscarPorID).Methods("GET")
	s.HandleFunc("/contas/{id}", contaHandler.AtualizarConta).Methods("PUT")
	s.HandleFunc("/contas/{id}", contaHandler.DeletarConta).Methods("DELETE")
	s.HandleFunc("/contas/{id}/pagar", contaHandler.PagarConta).Methods("POST")

	// Rotas de locações de equipamento
	s.HandleFunc("/locacoes", locacaoHandler.CriarLocacao).Methods("POST")
	s.HandleFunc("/locacoes", locacaoHandler.ListarLocacoes).Methods("GET")
	s.HandleFunc("/locacoes/{id}", locacaoHandler.BuscarPorID).Methods("GET")
	s.HandleFunc("/locacoes/{id}", locacaoHandler.AtualizarLocacao).Methods("PUT")
	s.HandleFunc("/locacoes/{id}", locacaoHandler.DeletarLocacao).Methods("DELETE")
	s.HandleFunc("/locacoes/{id}/gerar-conta", locacaoHandler.GerarConta).Methods("POST")

	// Rotas de ferramentas
	s.HandleFunc("/ferramentas", ferramentaHandler.CriarFerramenta).Methods("POST")
	s.HandleFunc("/ferramentas", ferramentaHandler.ListarFerramentas).Methods("GET")
	s.HandleFunc("/ferramentas/{id}", ferramentaHandler.BuscarPorID).Methods("GET")
	s.HandleFunc("/ferramentas/{id}", ferramentaHandler.AtualizarFerramenta).Methods("PUT")
	s.HandleFunc("/ferramentas/{id}", ferramentaHandler.DeletarFerramenta).Methods("DELETE")
	s.HandleFunc("/ferramentas/{id}/alocar", ferramentaHandler.AlocarNaObra).Methods("POST")

	// Rotas de orçamentos
	s.HandleFunc("/orcamentos", orcamentoHandler.CriarOrcamento).Methods("POST")
	s.HandleFunc("/orcamentos", orcamentoHandler.ListarOrcamentos).Methods("GET")
	s.HandleFunc("/orcamentos/{id}", orcamentoHandler.BuscarPorID).Methods("GET")
	s.HandleFunc("/orcamentos/{id}", orcamentoHandler.AtualizarOrcamento).Methods("PUT")
	s.HandleFunc("/orcamentos/{id}", orcamentoHandler.DeletarOrcamento).Methods("DELETE")
	s.HandleFunc("/orcamentos/{id}/status", orcamentoHandler.MudarStatus).Methods("PUT")

	// Rotas de notas fiscais
	s.HandleFunc("/notas-fiscais", notaHandler.CriarNota).Methods("POST")
	s.HandleFunc("/notas-fiscais", notaHandler.ListarNotas).Methods("GET")
	s.HandleFunc("/notas-fiscais/{id}", notaHandler.BuscarPorID).Methods("GET")
	s.HandleFunc("/notas-fiscais/{id}", notaHandler.AtualizarNota).Methods("PUT")
	s.HandleFunc("/notas-fiscais/{id}", notaHandler.DeletarNota).Methods("DELETE")
	s.HandleFunc("/notas-fiscais/{id}/pdf", notaHandler.BaixarPDF).Methods("GET")

	// Painel de alertas
	s.HandleFunc("/dashboard/alertas", dashboardHandler.ListarAlertas).Methods("GET")
	s.Handle("/dashboard/alertas/enviar-resumo", auth.RequireAdmin(http.HandlerFunc(dashboardHandler.EnviarResumo))).Methods("POST")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Inicia servidor
	fmt.Printf("Servidor rodando em http://localhost:%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
