package main

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/pfsense-client/internal/errs"
)

func TestListLeasesCmd_Flags(t *testing.T) {
	testTable := []struct {
		name     string
		args     []string
		find     string
		expired  bool
		debug    bool
		table    bool
		config   string
		insecure bool
		timeout  time.Duration
	}{
		{
			name:    "defaults",
			config:  env.Client.ConfigPath,
			timeout: 30 * time.Second,
		},
		{
			name:     "short flags",
			args:     []string{"-f", "1.2.3.4", "-e", "-d", "-t", "-c", "/tmp/pfsense.json", "-k"},
			find:     "1.2.3.4",
			expired:  true,
			debug:    true,
			table:    true,
			config:   "/tmp/pfsense.json",
			insecure: true,
			timeout:  30 * time.Second,
		},
		{
			name:    "long flags",
			args:    []string{"--find", "aa:bb", "--expired", "--config", "/etc/api.json", "--timeout", "5s"},
			find:    "aa:bb",
			expired: true,
			config:  "/etc/api.json",
			timeout: 5 * time.Second,
		},
	}

	for _, testCase := range testTable {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			cmd, _, err := newRootCmd().Find([]string{"cli", "list_leases"})
			require.NoError(t, err)
			require.Equal(t, "list_leases", cmd.Name())
			require.NoError(t, cmd.ParseFlags(testCase.args))

			flags := cmd.Flags()
			find, err := flags.GetString("find")
			require.NoError(t, err)
			assert.Equal(t, testCase.find, find)

			expired, err := flags.GetBool("expired")
			require.NoError(t, err)
			assert.Equal(t, testCase.expired, expired)

			debug, err := flags.GetBool("debug")
			require.NoError(t, err)
			assert.Equal(t, testCase.debug, debug)

			table, err := flags.GetBool("table")
			require.NoError(t, err)
			assert.Equal(t, testCase.table, table)

			config, err := flags.GetString("config")
			require.NoError(t, err)
			assert.Equal(t, testCase.config, config)

			insecure, err := flags.GetBool("insecure")
			require.NoError(t, err)
			assert.Equal(t, testCase.insecure, insecure)

			timeout, err := flags.GetDuration("timeout")
			require.NoError(t, err)
			assert.Equal(t, testCase.timeout, timeout)
		})
	}
}

func TestListLeasesCmd_ConfigNotFound(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"cli", "list_leases", "-c", filepath.Join(t.TempDir(), "absent.json")})

	err := rootCmd.ExecuteContext(context.Background())
	require.ErrorIs(t, err, errs.ErrConfigNotFound)
}

func TestListLeasesCmd_Execute(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","code":200,"return":0,"message":"Success","data":[
			{"type":"dynamic","mac":"aa:bb","ip":"1.2.3.4","state":"active","online":true,"hostname":"h1"},
			{"type":"dynamic","mac":"cc:dd","ip":"1.2.3.5","state":"active","online":true,"hostname":"h2"}
		]}`))
	}))
	defer server.Close()

	serverURL, err := url.Parse(server.URL)
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(serverURL.Host)
	require.NoError(t, err)

	configPath := filepath.Join(t.TempDir(), "pfsense.json")
	content := fmt.Sprintf(`{"hostname":%q,"port":%s,"client_id":"id","client_token":"token"}`, host, port)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

	var logBuf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&logBuf)
	defer func() { log.Logger = previous }()

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"cli", "list_leases", "-c", configPath, "-k", "--log-level", "info", "-f", "cc:dd"})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	assert.Contains(t, logBuf.String(), `"message":"dynamic\tcc:dd\t1.2.3.5\th2"`)
	assert.NotContains(t, logBuf.String(), "aa:bb")
}

func TestNewHTTPClient(t *testing.T) {
	client := newHTTPClient(&rootFlags{insecure: true, timeout: 5 * time.Second})

	assert.Equal(t, 5*time.Second, client.Timeout)
	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	require.NotNil(t, transport.TLSClientConfig)
	assert.True(t, transport.TLSClientConfig.InsecureSkipVerify)

	client = newHTTPClient(&rootFlags{timeout: time.Second})
	transport, ok = client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.False(t, transport.TLSClientConfig.InsecureSkipVerify)
}
