package main

import "testing"

func TestMainRunsExecute(t *testing.T) {
	ran := false
	orig := execute
	execute = func() { ran = true }
	t.Cleanup(func() { execute = orig })

	main()

	if !ran {
		t.Fatal("expected main to run cmd.Execute")
	}
}
