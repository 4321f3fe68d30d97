// Package cli handles cmd line input for DBG and testing the models
// without a msgpack client attached.
package cli

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/wordcrack/pkg/cipher"
	"github.com/bastiangx/wordcrack/pkg/segment"
	"github.com/bastiangx/wordcrack/pkg/server"
)

// InputHandler processes user input from stdin. Plain lines are
// segmented; lines starting with a slash command route to the cipher
// decoders or the generator.
type InputHandler struct {
	engine         *server.Engine
	maxTextLen     int
	generateLength int
	requestCount   int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(engine *server.Engine, maxTextLen, generateLength int) *InputHandler {
	return &InputHandler{
		engine:         engine,
		maxTextLen:     maxTextLen,
		generateLength: generateLength,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("WordCrack CLI [BETA]")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type joined text and press Enter to segment it (Ctrl+C to exit)")
	log.Print("commands: /shift <text>  /perm <text>  /rot13 <text>  /gen [n]")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput dispatches a single line. Commands consume the rest of
// the line as their argument.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	op, arg := "segment", line
	if strings.HasPrefix(line, "/") {
		op, arg, _ = strings.Cut(line[1:], " ")
		arg = strings.TrimSpace(arg)
	}

	if op != "gen" {
		if arg == "" {
			log.Errorf("Command /%s needs a text argument", op)
			return
		}
		if len(arg) > h.maxTextLen {
			log.Errorf("Input too long: %d chars (max %d)", len(arg), h.maxTextLen)
			return
		}
	}

	start := time.Now()
	log.Debug("Processing request", "op", op)

	switch op {
	case "segment":
		words, p := segment.Segment(arg, h.engine.Words)
		log.Printf("%s", strings.Join(words, " "))
		log.Debugf("probability %.3g", p)
	case "shift":
		log.Printf("%s", cipher.DecodeShift(arg, h.engine.Training))
	case "rot13":
		log.Printf("%s", cipher.Rot13(arg))
	case "perm":
		plaintext, mapping, err := cipher.NewPermutationDecoder(h.engine.Training).Decode(arg)
		if err != nil {
			log.Errorf("Decoding failed: %v", err)
			return
		}
		log.Printf("%s", plaintext)
		for _, pair := range mapping.Pairs() {
			log.Debugf("  %c -> %c", pair[0], pair[1])
		}
	case "gen":
		length := h.generateLength
		if arg != "" {
			n, err := strconv.Atoi(arg)
			if err != nil || n < 1 {
				log.Errorf("Bad length: %q", arg)
				return
			}
			length = n
		}
		text, err := h.engine.Chain.GenerateText(length)
		if err != nil {
			log.Errorf("Generation failed: %v", err)
			return
		}
		log.Printf("%s", text)
	default:
		log.Errorf("Unknown command: /%s", op)
		return
	}

	log.Debugf("Took [ %v ]", time.Since(start))
}
