package terminal

import "strings"

// Task - одна задача с кодом.
type Task struct {
	Description string `json:"description"`
	Template    string `json:"template"`
	Solution    string `json:"solution"`
}

// Сообщения задачи (ключи локализации).
const (
	MsgTaskSolved    = "Task solved! Great job!"
	MsgAllSolved     = "All tasks completed! You can now proceed to the next level."
	MsgWrongSolution = "Incorrect solution. Try again!"
)

// CodeTask - линейная цепочка задач. Индекс только растет и не превышает len(tasks).
// Решено тогда и только тогда, когда index == len(tasks).
type CodeTask struct {
	tasks   []Task
	index   int
	message string
	buffer  string
}

func NewCodeTask(tasks []Task) *CodeTask {
	ct := &CodeTask{tasks: append([]Task(nil), tasks...)}
	ct.loadCurrent()
	return ct
}

func (ct *CodeTask) Index() int      { return ct.index }
func (ct *CodeTask) Len() int        { return len(ct.tasks) }
func (ct *CodeTask) IsSolved() bool  { return ct.index >= len(ct.tasks) }
func (ct *CodeTask) Message() string { return ct.message }
func (ct *CodeTask) Buffer() string  { return ct.buffer }

func (ct *CodeTask) SetBuffer(s string) { ct.buffer = s }

// Current - текущая задача; false, если все решены.
func (ct *CodeTask) Current() (Task, bool) {
	if ct.IsSolved() {
		return Task{}, false
	}
	return ct.tasks[ct.index], true
}

// Submit проверяет решение: ожидаемая строка должна входить в текст дословно,
// с учетом регистра. Код не выполняется.
func (ct *CodeTask) Submit(text string) bool {
	task, ok := ct.Current()
	if !ok {
		ct.message = MsgAllSolved
		return false
	}
	if !strings.Contains(text, task.Solution) {
		ct.message = MsgWrongSolution
		return false
	}

	ct.index++
	if ct.IsSolved() {
		ct.message = MsgAllSolved
	} else {
		ct.message = MsgTaskSolved
	}
	ct.loadCurrent()
	return true
}

// Reveal заполняет редактор шаблоном с готовым решением.
func (ct *CodeTask) Reveal() bool {
	task, ok := ct.Current()
	if !ok {
		return false
	}
	ct.buffer = task.Template + "\n    " + task.Solution
	return true
}

// MarkSolved прогоняет все оставшиеся задачи (чит администратора).
func (ct *CodeTask) MarkSolved() {
	ct.index = len(ct.tasks)
	ct.message = MsgAllSolved
	ct.buffer = ""
}

func (ct *CodeTask) loadCurrent() {
	if task, ok := ct.Current(); ok {
		ct.buffer = task.Template
	} else {
		ct.buffer = ""
	}
}
