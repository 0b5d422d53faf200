package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath       string
	APIBaseURL       string
	BackendReachable bool
	DefaultCurrency  string
	LogFile          string
}

func RenderSystemInfo(data SystemInfoItem) error {
	backendStatus := pterm.Green("Reachable")
	if !data.BackendReachable {
		backendStatus = pterm.Red("Unreachable")
	}

	logFile := data.LogFile
	if logFile == "" {
		logFile = "(stderr)"
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"API Base URL", data.APIBaseURL},
		{"Backend Status", backendStatus},
		{"Default Currency", data.DefaultCurrency},
		{"Log File", logFile},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
