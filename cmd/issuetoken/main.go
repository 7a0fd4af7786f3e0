// Command issuetoken prints an operator access token for the node's
// protected methods, signed with the node's configured secret.
//
//	issuetoken [node flags] <operator>
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/tokenregister/internal/server/auth"
	"github.com/dmitrijs2005/tokenregister/internal/server/config"
)

func main() {

	args := os.Args[1:]
	if len(args) == 0 {
		log.Fatal("usage: issuetoken [flags] <operator>")
	}
	operator := args[len(args)-1]

	cfg, err := config.Load(args[:len(args)-1])
	if err != nil {
		log.Fatalf("%v", err)
	}

	token, err := auth.GenerateToken(operator, []byte(cfg.SecretKey), cfg.AccessTokenValidityDuration)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println(token)
}
