package utils

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	log1 "github.com/charmbracelet/log"
)

// Log 全局日志，Init 之前也可以直接使用
var Log = log1.NewWithOptions(os.Stderr, log1.Options{
	ReportTimestamp: true,
	TimeFormat:      time.DateTime,
})

// Init 设置日志级别与样式，level 为 debug/info/warn/error
func Init(level string) {
	InitWithWriter(os.Stderr, level)
}

func InitWithWriter(w io.Writer, level string) {
	Log = log1.NewWithOptions(w, log1.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "coach",
	})
	Log.SetLevel(parseLevel(level))

	styles := log1.DefaultStyles()
	styles.Levels[log1.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#90EE90")).
		Foreground(lipgloss.Color("#006400")).Bold(true)

	styles.Levels[log1.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#FFD700")).
		Foreground(lipgloss.Color("#000000")).Bold(true)

	styles.Levels[log1.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#FF0000")).
		Foreground(lipgloss.Color("#FFFFFF")).Bold(true)

	styles.Levels[log1.FatalLevel] = lipgloss.NewStyle().
		SetString("FATAL").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#000000")).
		Foreground(lipgloss.Color("#FF0000")).Bold(true)
	Log.SetStyles(styles)
}

func parseLevel(level string) log1.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log1.DebugLevel
	case "warn", "warning":
		return log1.WarnLevel
	case "error":
		return log1.ErrorLevel
	default:
		return log1.InfoLevel
	}
}
