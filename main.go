package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mindwell-app/mindwell/config"
	"github.com/mindwell-app/mindwell/database"
	"github.com/mindwell-app/mindwell/logger"
	"github.com/mindwell-app/mindwell/web"
	"github.com/mindwell-app/mindwell/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			if err := database.CloseDB(); err != nil {
				logger.Warning("close db err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

func createAccount(username, email, password string) {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	userService := service.UserService{}
	err = userService.Register(username, email, password, password)
	if err != nil {
		fmt.Println("create account failed:", err)
	} else {
		fmt.Println("create account success")
	}
}

func main() {
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use:   "mindwell",
		Short: "Mental-health self-tracking web application",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var accountCmd = &cobra.Command{
		Use:   "account",
		Short: "Create an account from the command line",
		Run: func(cmd *cobra.Command, args []string) {
			username, _ := cmd.Flags().GetString("username")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			if username == "" || email == "" || password == "" {
				fmt.Println("username, email and password are required")
				return
			}
			createAccount(username, email, password)
		},
	}

	accountCmd.Flags().String("username", "", "account username")
	accountCmd.Flags().String("email", "", "account email")
	accountCmd.Flags().String("password", "", "account password")

	rootCmd.AddCommand(runCmd, accountCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Execute err:", err)
		os.Exit(1)
	}
}
