package stxlang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/npillmayer/quasi/scanner"
	"github.com/timtadh/lexmachine"
)

// The tokens representing literal one-char lexemes
var literals = []string{"(", ")", "[", "]", "`", "$", ":", "*", "?", ","}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["ID"] = scanner.Ident
		tokenIds["NUM"] = scanner.Int
		tokenIds["STRING"] = scanner.String
		for _, lit := range literals {
			tokenIds[lit] = int(lit[0])
		}
	})
}

// Token returns a token name and its value.
func Token(t string) (string, int) {
	initTokens()
	id, ok := tokenIds[t]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", t))
	}
	return t, id
}

// Lexer creates a new lexmachine lexer for the surface notation.
func Lexer() (*scanner.LMAdapter, error) {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`;[^\n]*\n?`), scanner.Skip) // skip comments
		lexer.Add([]byte(`\"[^"]*\"`), makeToken("STRING"))
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_|\.|'|\-)*`), makeToken("ID"))
		lexer.Add([]byte(`(\+|\-|/|<|>|=|!|%|&)+`), makeToken("ID"))
		lexer.Add([]byte(`[0-9]+`), makeToken("NUM"))
		lexer.Add([]byte(`( |\t|\n|\r)+`), scanner.Skip)
	}
	adapter, err := scanner.NewLMAdapter(init, literals, nil, tokenIds)
	if err != nil {
		return nil, err
	}
	return adapter, nil
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return scanner.MakeToken(s, id)
}
