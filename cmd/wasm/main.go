//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"stubgen/config"
	"stubgen/internal/adapter/buffer"
	"stubgen/internal/adapter/stub"
	"stubgen/internal/usecase"
)

var (
	generator   *stub.Generator
	transformer *usecase.Transformer
)

func init() {
	generator = stub.NewGenerator(config.DefaultFailStatement)
	transformer = usecase.NewTransformer(generator, nil)
}

func main() {
	c := make(chan struct{})

	js.Global().Set("stubgenGenerate", js.FuncOf(generate))
	js.Global().Set("stubgenApply", js.FuncOf(apply))

	<-c
}

func generate(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: stubgenGenerate(text)")
	}
	return makeResult(map[string]interface{}{
		"stub": generator.Generate(args[0].String()),
	})
}

// apply runs one transformation over a document held by the JS host.
// start/end are byte offsets of the selection; cursorLine is 1-based and only
// used when start == end.
func apply(this js.Value, args []js.Value) interface{} {
	if len(args) < 4 {
		return makeError("usage: stubgenApply(document, start, end, cursorLine)")
	}

	text := args[0].String()
	start, end := args[1].Int(), args[2].Int()
	cursorLine := args[3].Int()

	doc := buffer.NewDocument(text, cursorLine)
	if start != end {
		doc.Select(start, end)
	}

	outcome := transformer.Apply(doc)
	return makeResult(map[string]interface{}{
		"applied":  outcome.Applied,
		"reason":   string(outcome.Reason),
		"mode":     outcome.Mode,
		"document": doc.Text(),
	})
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
