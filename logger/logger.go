package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

func init() {
	// Ensure the log directory exists.
	if err := os.MkdirAll("log/app", os.ModePerm); err != nil {
		fmt.Println("Could not create log directory:", err)
	}

	fileName := fmt.Sprintf("log/app/app_%s.log", time.Now().Format("02-01-2006"))
	logFile, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Println("Could not open log file:", err)
	}
	multiWriter := io.MultiWriter(os.Stdout, logFile)
	log.SetOutput(multiWriter)
	log.SetLevel(log.LevelInfo)
	log.Info("Logger initialized")
}

func Success(message string) {
	log.Info("[OK] " + message)
}

func Error(message string, err error) {
	if err != nil {
		log.Error("[ERR] " + message + ": " + err.Error())
	} else {
		log.Error("[ERR] " + message)
	}
}

func Warning(message string) {
	log.Warn("[WARN] " + message)
}

func Debug(message string) {
	log.Debug("[DBG] " + message)
}

func Info(message string) {
	log.Info(message)
}

func Printf(format string, args ...interface{}) {
	log.Info(fmt.Sprintf(format, args...))
}

func Fatal(message string) {
	log.Fatal(message)
	os.Exit(1)
}
