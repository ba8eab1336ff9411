// Команда levelschema печатает JSON Schema описания уровня.
//
//	go run ./cmd/levelschema > assets/levels/schema.json
package main

import (
	"fmt"
	"os"

	"space-horror/pkg/dungeon"
)

func main() {
	data, err := dungeon.SchemaJSON()
	if err != nil {
		fmt.Fprintln(os.Stderr, "levelschema:", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
	fmt.Println()
}
