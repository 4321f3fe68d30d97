package server

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/wordcrack/internal/logger"
	"github.com/bastiangx/wordcrack/pkg/cipher"
	"github.com/bastiangx/wordcrack/pkg/config"
	"github.com/bastiangx/wordcrack/pkg/model"
	"github.com/bastiangx/wordcrack/pkg/segment"
)

// Engine bundles the trained assets the server operates with. Models
// are built before the server starts and are read-only afterwards.
type Engine struct {
	Words    *model.NgramModel // unigram word model for segmentation
	Chain    *model.NgramModel // n-gram model for generation
	Training string            // corpus text for the cipher decoders
}

// Server handles the IPC for segmentation and cipher decoding.
type Server struct {
	engine  *Engine
	cfg     *config.Config
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
	log     *log.Logger
}

// NewServer creates a server using stdin/stdout for IPC.
func NewServer(engine *Engine, cfg *config.Config) *Server {
	return NewServerWithIO(engine, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over explicit streams.
func NewServerWithIO(engine *Engine, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		engine:  engine,
		cfg:     cfg,
		decoder: msgpack.NewDecoder(bufio.NewReader(r)),
		encoder: msgpack.NewEncoder(w),
		log:     logger.New("ipc"),
	}
}

// Start begins listening for IPC requests. It returns nil when the
// client disconnects.
func (s *Server) Start() error {
	s.log.Debug("Starting server.")
	s.send(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

func (s *Server) handleRequest(request Request) {
	switch request.Op {
	case "segment":
		s.handleSegment(request)
	case "shift":
		s.handleShift(request)
	case "perm":
		s.handlePerm(request)
	case "rot13":
		s.handleRot13(request)
	case "generate":
		s.handleGenerate(request)
	case "health":
		s.send(StatusResponse{Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("unknown op: %s", request.Op), 400)
	}
}

// validText rejects empty or oversized inputs before any work happens.
func (s *Server) validText(request Request) bool {
	if request.Text == "" {
		s.sendError(request.ID, "missing 't' parameter", 400)
		return false
	}
	if len(request.Text) > s.cfg.Server.MaxTextLen {
		s.sendError(request.ID, fmt.Sprintf("text exceeds maximum length of %d", s.cfg.Server.MaxTextLen), 400)
		return false
	}
	return true
}

func (s *Server) handleSegment(request Request) {
	if !s.validText(request) {
		return
	}

	start := time.Now()
	words, p := segment.Segment(request.Text, s.engine.Words)
	elapsed := time.Since(start)

	s.send(SegmentResponse{
		ID:          request.ID,
		Words:       words,
		Probability: p,
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleShift(request Request) {
	if !s.validText(request) {
		return
	}

	start := time.Now()
	plaintext := cipher.DecodeShift(request.Text, s.engine.Training)
	elapsed := time.Since(start)

	s.send(DecodeResponse{
		ID:        request.ID,
		Plaintext: plaintext,
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handlePerm(request Request) {
	if !s.validText(request) {
		return
	}

	start := time.Now()
	plaintext, mapping, err := cipher.NewPermutationDecoder(s.engine.Training).Decode(request.Text)
	elapsed := time.Since(start)
	if err != nil {
		s.sendError(request.ID, err.Error(), 422)
		return
	}

	pairs := make(map[string]string, mapping.Size())
	for _, pair := range mapping.Pairs() {
		pairs[string(pair[0])] = string(pair[1])
	}
	s.send(DecodeResponse{
		ID:        request.ID,
		Plaintext: plaintext,
		Mapping:   pairs,
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleRot13(request Request) {
	if !s.validText(request) {
		return
	}
	start := time.Now()
	plaintext := cipher.Rot13(request.Text)
	elapsed := time.Since(start)

	s.send(DecodeResponse{
		ID:        request.ID,
		Plaintext: plaintext,
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleGenerate(request Request) {
	length := request.Length
	if length < 1 {
		length = s.cfg.Model.GenerateLength
	}
	if length > s.cfg.Server.MaxLimit {
		length = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	text, err := s.engine.Chain.GenerateText(length)
	elapsed := time.Since(start)
	if err != nil {
		s.sendError(request.ID, err.Error(), 422)
		return
	}

	s.send(GenerateResponse{
		ID:        request.ID,
		Text:      text,
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) send(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.log.Debugf("Request %s failed: %s", id, message)
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
