package inspect

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/danmuck/arpscope/internal/arp"
	"github.com/danmuck/arpscope/internal/observability"
	"github.com/danmuck/arpscope/internal/opaque"
	"github.com/danmuck/arpscope/internal/record"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// MaxBodyBytes bounds a decode request body.
const MaxBodyBytes = 64 * 1024

var (
	ErrEmptyMessage = errors.New("empty message")
	ErrInvalidHex   = errors.New("invalid hex")
	ErrBadOffset    = errors.New("offset out of range")
	ErrUnknownField = errors.New("unknown field")
)

type Server struct {
	ID       string    `json:"id"`
	Addr     string    `json:"addr"`
	Appeared time.Time `json:"appeared"`

	decoder  *arp.Decoder
	router   *gin.Engine
	entryLog zerolog.Logger
}

func Appear(id, addr string, corsOrigins []string, decoder *arp.Decoder) *Server {
	observability.RegisterMetrics()
	if decoder == nil {
		decoder = arp.NewDecoder()
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware(id))
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(corsOrigins),
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	return &Server{
		ID:       id,
		Addr:     addr,
		Appeared: time.Now(),
		decoder:  decoder,
		router:   r,
		entryLog: log.Logger,
	}
}

// LogEntries sets the logger that receives every decoded entry at debug level.
func (s *Server) LogEntries(l zerolog.Logger) {
	s.entryLog = l
}

func (s *Server) HTTPRouter() *gin.Engine {
	return s.router
}

func (s *Server) RegisterRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.Appeared).String(),
			"service": s.ID,
			"version": "0.0.1",
		})
	})

	s.router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":   true,
			"uptime":  time.Since(s.Appeared).String(),
			"service": s.ID,
			"version": "0.0.1",
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/catalog/hardware-types", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"hardware_types": s.decoder.Catalog().HardwareTypes()})
	})

	s.router.GET("/catalog/opcodes", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"opcodes": s.decoder.Catalog().Opcodes()})
	})

	s.router.GET("/catalog/fields", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"fields": arp.Fields()})
	})

	s.router.POST("/decode", s.handleDecode)
}

// DecodeRequest is the JSON form of a decode request.
type DecodeRequest struct {
	Hex    string `json:"hex"`
	Offset int    `json:"offset"`
}

// DecodeResult is returned for both decoded and opaque messages.
type DecodeResult struct {
	Status   string      `json:"status"`
	Protocol string      `json:"protocol,omitempty"`
	Info     string      `json:"info,omitempty"`
	Error    string      `json:"error,omitempty"`
	Entries  []arp.Entry `json:"entries"`
}

func (s *Server) handleDecode(c *gin.Context) {
	fields, err := ParseFields(c.Query("fields"))
	if err != nil {
		s.rejectDecode(c, err)
		return
	}
	buf, offset, err := readMessage(c)
	if err != nil {
		s.rejectDecode(c, err)
		return
	}
	c.JSON(http.StatusOK, s.Decode(buf, offset, fields...))
}

func (s *Server) rejectDecode(c *gin.Context, err error) {
	observability.RecordDecode(s.ID, observability.OutcomeInvalid, "", 0)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// Decode runs the decoder over buf and records the outcome. When fields is
// non-empty only those structured entries are returned; opaque data is
// always returned.
func (s *Server) Decode(buf []byte, offset int, fields ...arp.FieldID) DecodeResult {
	tree := record.NewTree()
	var sink arp.Sink = record.NewFilter(tree, fields...)
	if s.entryLog.GetLevel() <= zerolog.DebugLevel && zerolog.GlobalLevel() <= zerolog.DebugLevel {
		sink = record.Tee{sink, record.LogSink{
			Logger: s.entryLog.With().Str("service", s.ID).Logger(),
			Level:  zerolog.DebugLevel,
		}}
	}
	view := arp.View{Buf: buf, Offset: offset}
	m, err := s.decoder.Dissect(view, sink, opaque.Data{Sink: tree, Dump: true})
	if err != nil {
		observability.RecordDecode(s.ID, observability.OutcomeOpaque, "", view.Available())
		log.Debug().
			Str("service", s.ID).
			Err(err).
			Msg("decode fell back to opaque data")
		return DecodeResult{Status: "opaque", Error: err.Error(), Entries: tree.Entries()}
	}
	observability.RecordDecode(s.ID, observability.OutcomeDecoded, m.Protocol, m.Length)
	return DecodeResult{
		Status:   "ok",
		Protocol: m.Protocol,
		Info:     m.Info,
		Entries:  tree.Entries(),
	}
}

func readMessage(c *gin.Context) ([]byte, int, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)
	if c.ContentType() == "application/octet-stream" {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return nil, 0, err
		}
		if len(raw) == 0 {
			return nil, 0, ErrEmptyMessage
		}
		return raw, 0, nil
	}

	var req DecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, 0, err
	}
	buf, err := ParseHex(req.Hex)
	if err != nil {
		return nil, 0, err
	}
	if len(buf) == 0 {
		return nil, 0, ErrEmptyMessage
	}
	if req.Offset < 0 || req.Offset > len(buf) {
		return nil, 0, ErrBadOffset
	}
	return buf, req.Offset, nil
}

// ParseFields resolves a comma-separated list of field abbreviations.
func ParseFields(raw string) ([]arp.FieldID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]arp.FieldID, 0, len(parts))
	for _, part := range parts {
		abbrev := strings.TrimSpace(part)
		if abbrev == "" {
			continue
		}
		id, ok := arp.FieldByAbbrev(abbrev)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, abbrev)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseHex accepts hex with optional whitespace, ':' or '-' separators.
func ParseHex(s string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':', '-':
			return -1
		}
		return r
	}, s)
	cleaned = strings.TrimPrefix(strings.TrimPrefix(cleaned, "0x"), "0X")
	out, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, ErrInvalidHex
	}
	return out, nil
}

func (s *Server) Serve() error {
	s.RegisterRoutes()
	log.Info().Str("service", s.ID).Str("addr", s.Addr).Msg("inspect listening")
	return s.router.Run(s.Addr)
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}
