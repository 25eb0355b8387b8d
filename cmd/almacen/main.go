package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/almacen/internal/application/auth"
	"github.com/jhoicas/almacen/internal/application/report"
	"github.com/jhoicas/almacen/internal/application/session"
	"github.com/jhoicas/almacen/internal/infrastructure/sqlite"
	"github.com/jhoicas/almacen/internal/interfaces/cli"
	"github.com/jhoicas/almacen/internal/interfaces/forms"
	"github.com/jhoicas/almacen/pkg/config"
	"github.com/jhoicas/almacen/pkg/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand arma el CLI: `almacen menu` corre el menú de texto,
// `almacen forms` el front end de formularios, y a secas pregunta cuál.
func newRootCommand() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:           "almacen",
		Short:         "Stock Maintenance System",
		Long:          "Sistema de mantenimiento de stock: ítems, proveedores y órdenes de compra sobre una base SQLite local.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			front, err := askFrontend()
			if err != nil {
				return err
			}
			return run(front, dbPath)
		},
	}

	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "ruta del archivo SQLite (default: ALMACEN_DB_PATH o almacen.db)")

	cmd.AddCommand(&cobra.Command{
		Use:   "menu",
		Short: "Corre el menú de texto numerado",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(frontMenu, dbPath)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "forms",
		Short: "Corre el front end de formularios (tview)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(frontForms, dbPath)
		},
	})

	return cmd
}

const (
	frontMenu  = "menu"
	frontForms = "forms"
)

// askFrontend pregunta por stdin qué front end usar cuando el binario se
// invoca sin subcomando. Enter a secas cae al menú de texto.
func askFrontend() (string, error) {
	fmt.Print("Interface [menu/forms] (default: menu): ")
	var answer string
	fmt.Scanln(&answer)
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", frontMenu:
		return frontMenu, nil
	case frontForms:
		return frontForms, nil
	default:
		return "", fmt.Errorf("interfaz desconocida %q", answer)
	}
}

// run arma todo el cableado: config, logger, base, repositorios, casos de uso,
// login y el front end elegido. El handle de la base se abre acá y se cierra
// al salir; nada de estado global.
func run(front, dbPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	if dbPath != "" {
		cfg.DB.Path = dbPath
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("db", cfg.DB.Path).
		Msg("iniciando aplicación")

	db, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		log.Error().Err(err).Msg("abrir base de datos")
		return err
	}
	defer db.Close()

	userRepo := sqlite.NewUserRepository(db)
	stockRepo := sqlite.NewStockRepository(db)
	supplierRepo := sqlite.NewSupplierRepository(db)
	orderRepo := sqlite.NewPurchaseOrderRepository(db)
	auditRepo := sqlite.NewAuditRepository(db)
	txRunner := sqlite.NewTxRunner(db)

	authUC := auth.NewUseCase(userRepo)
	reports := report.NewService(stockRepo, orderRepo, cfg.Report.LowStockThreshold)

	username, role, err := cli.NewLogin(os.Stdin, os.Stdout, authUC).Run()
	if err != nil {
		return err
	}
	log.Info().Str("user", username).Str("role", role).Msg("sesión iniciada")

	sess := session.New(username, role, stockRepo, supplierRepo, orderRepo, auditRepo, txRunner, reports, log)

	switch front {
	case frontForms:
		app := forms.New(sess, forms.Config{
			CSVPath: cfg.Report.CSVPath,
			PDFPath: cfg.Report.PDFPath,
		})
		return app.Run()
	default:
		menu := cli.NewMenu(os.Stdin, os.Stdout, sess, cli.Config{
			CSVPath:          cfg.Report.CSVPath,
			PDFPath:          cfg.Report.PDFPath,
			DefaultThreshold: cfg.Report.LowStockThreshold,
		})
		return menu.Run()
	}
}
