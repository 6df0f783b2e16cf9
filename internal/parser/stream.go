package parser

// stream yields input tokens. Tokens split by the parser are pushed
// back in front of the remaining input.
type stream struct {
	pending []string
	tokens  []string
}

func newStream(tokens []string) *stream {
	return &stream{tokens: tokens}
}

func (s *stream) next() (string, bool) {
	if n := len(s.pending); n > 0 {
		token := s.pending[n-1]
		s.pending = s.pending[:n-1]

		return token, true
	}

	if len(s.tokens) == 0 {
		return "", false
	}

	token := s.tokens[0]
	s.tokens = s.tokens[1:]

	return token, true
}

// push puts tokens back, so that the next call yields the first one.
func (s *stream) push(tokens ...string) {
	for i := len(tokens) - 1; i >= 0; i-- {
		s.pending = append(s.pending, tokens[i])
	}
}

// drain returns all remaining tokens, in order.
func (s *stream) drain() []string {
	rest := make([]string, 0, len(s.pending)+len(s.tokens))
	for i := len(s.pending) - 1; i >= 0; i-- {
		rest = append(rest, s.pending[i])
	}

	rest = append(rest, s.tokens...)
	s.pending, s.tokens = nil, nil

	return rest
}
