/*
Package dictionary loads word-frequency lexicons and turns them into
unigram word models. It accepts plain text lists (one "word frequency"
pair per line) and the chunked binary format produced by the wordlist
build scripts, keeping everything in a Patricia trie for prefix
queries.
*/
package dictionary

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/bastiangx/wordcrack/pkg/model"
)

// WordFreq is one lexicon entry.
type WordFreq struct {
	Word      string
	Frequency int
}

// Lexicon is an in-memory word-frequency table. It is filled once by
// the loaders and read-only afterwards.
type Lexicon struct {
	trie         *patricia.Trie
	freqs        map[string]int
	totalWords   int
	maxFrequency int
}

// NewLexicon creates an empty lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{
		trie:  patricia.NewTrie(),
		freqs: make(map[string]int),
	}
}

// Add inserts a word with its frequency, accumulating on repeats.
func (l *Lexicon) Add(word string, frequency int) {
	if word == "" || frequency < 1 {
		return
	}
	if _, exists := l.freqs[word]; !exists {
		l.totalWords++
	}
	l.freqs[word] += frequency
	l.trie.Insert(patricia.Prefix(word), l.freqs[word])
	if l.freqs[word] > l.maxFrequency {
		l.maxFrequency = l.freqs[word]
	}
}

// Len returns the number of distinct words loaded.
func (l *Lexicon) Len() int { return l.totalWords }

// MaxFrequency returns the highest single-word frequency seen.
func (l *Lexicon) MaxFrequency() int { return l.maxFrequency }

// Frequency returns the loaded frequency for word, zero if absent.
func (l *Lexicon) Frequency(word string) int { return l.freqs[word] }

// LoadTextFile reads a plain wordlist: one word per line, optionally
// followed by whitespace and a frequency. Lines without a frequency
// count as one observation. Blank lines and #-comments are skipped.
func (l *Lexicon) LoadTextFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open wordlist %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		word := strings.ToLower(fields[0])
		freq := 1
		if len(fields) > 1 {
			parsed, err := strconv.Atoi(fields[1])
			if err != nil {
				log.Warnf("wordlist %s:%d: bad frequency %q, counting as 1", path, lineNo, fields[1])
			} else {
				freq = parsed
			}
		}
		l.Add(word, freq)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read wordlist %s: %w", path, err)
	}

	log.Debugf("Loaded %d words from %s", l.totalWords, path)
	return nil
}

// LoadChunkFile reads one binary chunk: an int32 entry count followed
// by length-prefixed words, each with a uint16 rank. Rank 1 is the
// most frequent word; ranks invert into scores so higher still means
// more frequent.
func (l *Lexicon) LoadChunkFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open chunk file %s: %w", path, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)

	var totalEntries int32
	if err := binary.Read(reader, binary.LittleEndian, &totalEntries); err != nil {
		return fmt.Errorf("failed to read chunk header: %w", err)
	}

	count := 0
	for count < int(totalEntries) {
		var wordLen uint16
		if err := binary.Read(reader, binary.LittleEndian, &wordLen); err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("failed to read word length: %w", err)
		}

		wordBytes := make([]byte, wordLen)
		if _, err := io.ReadFull(reader, wordBytes); err != nil {
			return fmt.Errorf("failed to read word: %w", err)
		}

		var rank uint16
		if err := binary.Read(reader, binary.LittleEndian, &rank); err != nil {
			return fmt.Errorf("failed to read rank: %w", err)
		}

		l.Add(string(wordBytes), int(65535-rank+1))
		count++
	}

	log.Debugf("Chunk %s loaded: %d words", path, count)
	return nil
}

// LoadDir loads every dict_*.bin chunk under dir in chunk-index order.
func (l *Lexicon) LoadDir(dir string) error {
	pattern := filepath.Join(dir, "dict_*.bin")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("failed to scan for chunk files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no chunk files found in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		if err := l.LoadChunkFile(f); err != nil {
			return err
		}
	}
	return nil
}

// WordsWithPrefix returns up to limit entries under prefix, most
// frequent first.
func (l *Lexicon) WordsWithPrefix(prefix string, limit int) []WordFreq {
	var out []WordFreq
	err := l.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		freq, ok := item.(int)
		if !ok {
			log.Errorf("Unknown item type: %T for word %s", item, p)
			freq = 1
		}
		out = append(out, WordFreq{Word: string(p), Frequency: freq})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Frequency > out[j].Frequency
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Visit walks every loaded word in trie order.
func (l *Lexicon) Visit(fn func(word string, frequency int)) {
	err := l.trie.Visit(func(p patricia.Prefix, item patricia.Item) error {
		if freq, ok := item.(int); ok {
			fn(string(p), freq)
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie: %v", err)
	}
}

// UnigramModel builds a unigram word model from the loaded
// frequencies. defaultProb is what unseen words report.
func (l *Lexicon) UnigramModel(defaultProb float64) *model.NgramModel {
	m := model.NewNgramModel(1, model.WordTokens, defaultProb)
	err := l.trie.Visit(func(p patricia.Prefix, item patricia.Item) error {
		if freq, ok := item.(int); ok {
			m.AddN(string(p), freq)
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie: %v", err)
	}
	return m
}
