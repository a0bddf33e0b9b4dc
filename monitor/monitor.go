package monitor

import (
	"os"

	"admissions-api/config"

	"github.com/gin-gonic/gin"
)

// RegisterMonitorPage serves a small status page with live log tailing.
func RegisterMonitorPage(router *gin.Engine) {
	router.GET("/monitor", func(c *gin.Context) {
		c.Data(200, "text/html; charset=utf-8", []byte(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>Admissions API Monitor</title>
  <style>
    body {
      background: #111;
      color: #ddd;
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
      margin: 0;
      padding: 24px;
    }
    h1 { font-size: 1.6rem; margin-bottom: 1rem; }
    #status { margin-bottom: 1rem; }
    #logs {
      background: #000;
      border: 1px solid #333;
      border-radius: 8px;
      padding: 12px;
      height: 70vh;
      overflow-y: auto;
      white-space: pre-wrap;
      font-family: monospace;
      font-size: 0.85rem;
    }
  </style>
</head>
<body>
  <h1>Admissions API Monitor</h1>
  <div id="status">Status: checking...</div>
  <pre id="logs">Loading logs...</pre>
  <script>
    const logsElement = document.getElementById('logs');
    const statusElement = document.getElementById('status');

    function fetchStatus() {
      fetch('/api/v1/health')
        .then(res => res.json())
        .then(data => { statusElement.textContent = 'Status: ' + (data.status === 'ok' ? 'online' : 'degraded'); })
        .catch(() => { statusElement.textContent = 'Status: offline'; });
    }

    function fetchLogs() {
      fetch('/logs?token=' + (new URLSearchParams(location.search).get('token') || ''))
        .then(res => res.text())
        .then(data => {
          logsElement.textContent = data;
          logsElement.scrollTop = logsElement.scrollHeight;
        });
    }

    fetchStatus();
    fetchLogs();
    setInterval(fetchStatus, 5000);
    setInterval(fetchLogs, 5000);
  </script>
</body>
</html>`))
	})
}

// RegisterLogsRoute exposes the backend log file behind a token.
func RegisterLogsRoute(router *gin.Engine) {
	router.GET("/logs", func(c *gin.Context) {
		token := os.Getenv("MONITOR_TOKEN")
		if token == "" || c.Query("token") != token {
			c.JSON(401, gin.H{"error": "Unauthorized"})
			return
		}
		logData, err := os.ReadFile(config.LogFilePath())
		if err != nil {
			c.JSON(500, gin.H{"error": "Unable to read log"})
			return
		}
		c.Data(200, "text/plain; charset=utf-8", logData)
	})
}
