package terminal

import (
	"testing"

	"space-horror/internal/domain"
	"space-horror/internal/gfx"
	"space-horror/internal/i18n"
)

func defaultTasks() []Task {
	return []Task{
		{Description: "Write a function that adds two numbers", Template: "def add(a, b):\n    # Your code here\n    return", Solution: "return a + b"},
		{Description: "Write a function that multiplies two numbers", Template: "def multiply(a, b):\n    # Your code here\n    return", Solution: "return a * b"},
	}
}

func TestSubmitSolution(t *testing.T) {
	tests := []struct {
		name      string
		submit    string
		wantIndex int
		wantMsg   string
	}{
		{"exact solution", "return a + b", 1, MsgTaskSolved},
		{"solution inside code", "def add(a, b):\n    return a + b\n", 1, MsgTaskSolved},
		{"wrong operator", "return a - b", 0, MsgWrongSolution},
		{"case matters", "RETURN A + B", 0, MsgWrongSolution},
		{"extra spaces break the match", "return a  + b", 0, MsgWrongSolution},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct := NewCodeTask(defaultTasks())
			ct.Submit(tt.submit)
			if ct.Index() != tt.wantIndex {
				t.Errorf("index = %d, want %d", ct.Index(), tt.wantIndex)
			}
			if ct.Message() != tt.wantMsg {
				t.Errorf("message = %q, want %q", ct.Message(), tt.wantMsg)
			}
		})
	}
}

func TestProgressionIsForwardAndBounded(t *testing.T) {
	ct := NewCodeTask(defaultTasks())
	if ct.IsSolved() {
		t.Fatal("fresh task list must not be solved")
	}

	if !ct.Submit("return a + b") {
		t.Fatal("first solution rejected")
	}
	// Решение прошлой задачи не подходит для следующей.
	if ct.Submit("return a + b") || ct.Index() != 1 {
		t.Fatalf("index = %d after resubmitting old answer", ct.Index())
	}
	if want := defaultTasks()[1].Template; ct.Buffer() != want {
		t.Errorf("buffer = %q, want next template", ct.Buffer())
	}

	if !ct.Submit("return a * b") {
		t.Fatal("second solution rejected")
	}
	if !ct.IsSolved() || ct.Index() != ct.Len() {
		t.Fatalf("solved = %v index = %d", ct.IsSolved(), ct.Index())
	}
	if ct.Message() != MsgAllSolved {
		t.Errorf("message = %q", ct.Message())
	}

	// После решения индекс не растет.
	ct.Submit("return a * b")
	if ct.Index() != 2 {
		t.Errorf("index overflowed to %d", ct.Index())
	}
}

func TestEmptyTaskListIsSolved(t *testing.T) {
	if !NewCodeTask(nil).IsSolved() {
		t.Error("empty task list must count as solved")
	}
}

func TestRevealPrefillsAnswer(t *testing.T) {
	ct := NewCodeTask(defaultTasks())
	ct.Reveal()
	want := "def add(a, b):\n    # Your code here\n    return\n    return a + b"
	if ct.Buffer() != want {
		t.Errorf("buffer = %q", ct.Buffer())
	}
	if !ct.Submit(ct.Buffer()) {
		t.Error("revealed answer must be accepted")
	}
}

func TestModalAdminPasteIsGated(t *testing.T) {
	admin := false
	m := NewCodeTaskModal(NewCodeTask(defaultTasks()), func() bool { return admin })
	tmpl := m.Task.Buffer()

	var in domain.Input
	in.Press(domain.KeyAdminPaste)
	m.Update(in, domain.Tick{})
	if m.Task.Buffer() != tmpl {
		t.Fatal("admin paste worked without admin mode")
	}

	admin = true
	m.Update(in, domain.Tick{})
	var submit domain.Input
	submit.Press(domain.KeySubmit)
	m.Update(submit, domain.Tick{})
	if m.Task.Index() != 1 {
		t.Errorf("index = %d, want 1 after admin paste and submit", m.Task.Index())
	}
}

func TestModalEditing(t *testing.T) {
	m := NewCodeTaskModal(NewCodeTask([]Task{{Template: "x", Solution: "ok"}}), nil)

	typing := domain.Input{Chars: []rune("ab")}
	m.Update(typing, domain.Tick{})
	var back domain.Input
	back.Press(domain.KeyBackspace)
	m.Update(back, domain.Tick{})
	var nl domain.Input
	nl.Press(domain.KeyEnter, domain.KeyTab)
	m.Update(nl, domain.Tick{})

	if got := m.Task.Buffer(); got != "xa\n    " {
		t.Errorf("buffer = %q", got)
	}

	var esc domain.Input
	esc.Press(domain.KeyEscape)
	if m.Update(esc, domain.Tick{}) {
		t.Error("Esc must close the modal")
	}
}

func TestModalDrawShowsFailure(t *testing.T) {
	m := NewCodeTaskModal(NewCodeTask(defaultTasks()), nil)
	m.Task.Submit("return a - b")

	rec := gfx.NewRecorder()
	m.Draw(rec, i18n.Identity{})
	if !rec.HasText(MsgWrongSolution) {
		t.Errorf("failure message not drawn, texts = %v", rec.Texts())
	}
	if !rec.HasText("Task 1 of 2") {
		t.Errorf("title not drawn, texts = %v", rec.Texts())
	}
}
