package linkscan

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr    string `yaml:"addr"`
		Timeout struct {
			Read  int `yaml:"read"`
			Write int `yaml:"write"`
			Idle  int `yaml:"idle"`
		} `yaml:"timeout"`
	} `yaml:"server"`
	Cache struct {
		TTL int `yaml:"ttl"`
	} `yaml:"cache"`
}

// WebServer exposes the scanner over HTTP: GET /check?target=<url>
// runs a scan and returns the report as JSON. Reports are cached per
// target for the configured TTL.
type WebServer struct {
	cfg   Config
	cache *Cache
}

func NewWebServer(configPath string) (*WebServer, error) {
	f, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var cfg Config
	err = yaml.NewDecoder(f).Decode(&cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot decode config file: %v", err)
	}
	ws := &WebServer{
		cfg:   cfg,
		cache: NewCache(),
	}
	if cfg.Cache.TTL > 0 {
		ws.cache.SetTTL(cfg.Cache.TTL)
	}
	return ws, nil
}

func (ws *WebServer) check(w http.ResponseWriter, r *http.Request) {
	queryString := r.URL.Query()
	qsTarget := queryString["target"]
	if len(qsTarget) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintln(w, `{"err":"cannot find target in query string"}`)
		return
	}
	target := qsTarget[0]
	// The server only scans remote pages; handing it file paths would
	// let callers read from the server's disk.
	if !IsWebTarget(target) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintln(w, `{"err":"target must be an absolute http(s) URL"}`)
		return
	}
	timeout := DefaultTimeout
	qsTimeout := queryString["timeout"]
	if len(qsTimeout) > 0 {
		secs, err := strconv.Atoi(qsTimeout[0])
		if err != nil || secs <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintln(w, `{"err":"cannot convert timeout to seconds"}`)
			return
		}
		timeout = time.Duration(secs) * time.Second
	}
	var insecure bool
	qsInsecure := queryString["insecure"]
	if len(qsInsecure) > 0 {
		var err error
		insecure, err = strconv.ParseBool(qsInsecure[0])
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintln(w, `{"err":"cannot convert insecure to boolean"}`)
			return
		}
	}

	report, ok := ws.cache.Get(target)
	if !ok {
		var err error
		report, err = Scan(target,
			WithTimeout(timeout),
			WithInsecure(insecure),
		)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, `{"err":%q}`+"\n", err.Error())
			return
		}
		ws.cache.Store(target, report)
	}
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(report)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "error encoding report: %v", err)
		return
	}
}

func (ws *WebServer) Handler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ws.check(w, r)
}

func (ws *WebServer) ListenAndServe() error {
	router := http.NewServeMux()
	router.Handle("/check", http.HandlerFunc(ws.Handler))
	srv := http.Server{
		Addr:         ws.cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  time.Duration(ws.cfg.Server.Timeout.Read) * time.Second,
		WriteTimeout: time.Duration(ws.cfg.Server.Timeout.Write) * time.Second,
		IdleTimeout:  time.Duration(ws.cfg.Server.Timeout.Idle) * time.Second,
	}
	return srv.ListenAndServe()
}
