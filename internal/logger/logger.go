package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Fivegen-LLC/pfsense-client/internal/constants"
)

// SetLogLevel sets global zerolog level from its text name.
func SetLogLevel(level string) (err error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("SetLogLevel: %w", err)
	}

	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Setup points the global logger to console, and also to a rolling file when logfilePath is set.
func Setup(console io.Writer, logfilePath string) (err error) {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        console,
		NoColor:    true,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
	}

	if lo.IsEmpty(logfilePath) {
		log.Logger = zerolog.New(consoleWriter)
		return nil
	}

	fileWriter, err := setupRollingLogFile(logfilePath)
	if err != nil {
		return fmt.Errorf("Setup: %w", err)
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(consoleWriter, fileWriter)).
		With().
		Timestamp().
		Logger()

	return nil
}

func setupRollingLogFile(filename string) (logWriter *lumberjack.Logger, err error) {
	// create log dir if not exists
	if err = os.MkdirAll(filepath.Dir(filename), constants.LogDirPerm); err != nil {
		return logWriter, fmt.Errorf("setupRollingLogFile: %w", err)
	}

	if _, statErr := os.Stat(filename); statErr != nil {
		if !os.IsNotExist(statErr) {
			return logWriter, fmt.Errorf("setupRollingLogFile: %w", statErr)
		}

		// create new log file
		logFile, err := os.OpenFile(filename, os.O_CREATE, constants.LogFilePerm)
		if err != nil {
			return logWriter, fmt.Errorf("setupRollingLogFile: %w", err)
		}
		defer logFile.Close()
	}

	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    15, // megabytes per log file
		MaxAge:     30, // days to keep retained files
		MaxBackups: 10,
		Compress:   true,
	}, nil
}
