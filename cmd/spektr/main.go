package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/trekkete/spektr/internal/client/tui"
)

const (
	logDir             = "logs"
	logFileName        = "client.log"
	logFilePermissions = 0o666

	// Имя переменной окружения для URL сервера.
	serverURLEnvVar = "SPEKTR_SERVER_URL"
	// Путь к файлу словаря стандартных параметров по умолчанию.
	defaultStdParamsPath = "spektr_params.json"
)

// Переменные для версии и даты сборки, устанавливаются через ldflags.
var (
	version = "dev"
	//nolint:gochecknoglobals // Устанавливается через ldflags при сборке
	buildDate = "unknown"
	//nolint:gochecknoglobals // Устанавливается через ldflags при сборке
	commitHash = "N/A"
)

// setupLogging настраивает логирование в файл logs/client.log.
// TUI занимает терминал, поэтому в stdout логи писать нельзя.
func setupLogging() {
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		panic("Не удалось создать директорию для логов: " + err.Error())
	}
	logPath := filepath.Join(logDir, logFileName)
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions)
	if err != nil {
		panic("Не удалось открыть лог-файл: " + err.Error())
	}

	logHandler := slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(logHandler))
	slog.Info("Логгер инициализирован", "path", logPath)
}

func main() {
	versionFlag := flag.Bool("version", false, "Показать версию и дату сборки")
	debugModeFlag := flag.Bool("debug", false, "Включить режим отладки TUI")
	serverURLFlag := flag.String("server-url", "",
		"URL сервера Spektr, например https://localhost:8443 (переопределяет "+serverURLEnvVar+")")
	stdParamsFlag := flag.String("params", defaultStdParamsPath,
		"Путь к файлу словаря стандартных параметров")

	flag.Parse()

	if *versionFlag {
		log.SetOutput(os.Stdout)
		log.SetFlags(0)
		log.Println("Spektr Client")
		log.Printf("Version: %s", version)
		log.Printf("Build Date: %s", buildDate)
		log.Printf("Commit Hash: %s", commitHash)
		os.Exit(0)
	}

	setupLogging()

	serverURL := *serverURLFlag
	if serverURL == "" {
		serverURL = os.Getenv(serverURLEnvVar)
	}

	slog.Info("Запуск Spektr",
		"server_url", serverURL,
		"params_path", *stdParamsFlag,
		"debug_mode", *debugModeFlag,
	)

	tui.Start(serverURL, *stdParamsFlag, *debugModeFlag)
}
