package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/go-todo-service/internal/app/controller"
)

const newCategoryLabel = "+ New Category"

type formField int

const (
	fieldText formField = iota
	fieldCategory
	fieldNewName
)

// addForm collects the text and category for a new todo. The category picker
// lists the known categories followed by a "+ New Category" entry that
// reveals a free-text name input.
type addForm struct {
	text    textinput.Model
	newName textinput.Model
	options []string
	choice  int
	focus   formField
}

func newAddForm(categories []string) addForm {
	text := textinput.New()
	text.Placeholder = "What needs doing?"
	text.CharLimit = 500
	text.Focus()

	name := textinput.New()
	name.Placeholder = "Category name"
	name.CharLimit = 100

	return addForm{
		text:    text,
		newName: name,
		options: append(append([]string{}, categories...), newCategoryLabel),
	}
}

func (f addForm) creatingCategory() bool {
	return f.choice == len(f.options)-1
}

// input builds the create request from the form.
func (f addForm) input() controller.NewTodo {
	in := controller.NewTodo{Text: strings.TrimSpace(f.text.Value())}
	if f.creatingCategory() {
		in.Category = controller.NewCategory
		in.NewCategoryName = strings.TrimSpace(f.newName.Value())
		return in
	}
	in.Category = f.options[f.choice]
	return in
}

func (f addForm) fields() []formField {
	if f.creatingCategory() {
		return []formField{fieldText, fieldCategory, fieldNewName}
	}
	return []formField{fieldText, fieldCategory}
}

func (f addForm) setFocus(to formField) addForm {
	f.focus = to
	f.text.Blur()
	f.newName.Blur()
	switch to {
	case fieldText:
		f.text.Focus()
	case fieldNewName:
		f.newName.Focus()
	case fieldCategory:
	}
	return f
}

func (f addForm) cycleFocus(step int) addForm {
	fields := f.fields()
	idx := 0
	for i, fld := range fields {
		if fld == f.focus {
			idx = i
		}
	}
	idx = (idx + step + len(fields)) % len(fields)
	return f.setFocus(fields[idx])
}

// update handles form navigation and forwards other keys to the focused input.
func (f addForm) update(msg tea.Msg, keys KeyMap) (addForm, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, keys.NextField):
			return f.cycleFocus(1), nil
		case key.Matches(km, keys.PrevField):
			return f.cycleFocus(-1), nil
		case f.focus == fieldCategory && key.Matches(km, keys.NextOpt):
			f.choice = (f.choice + 1) % len(f.options)
			return f, nil
		case f.focus == fieldCategory && key.Matches(km, keys.PrevOpt):
			f.choice = (f.choice - 1 + len(f.options)) % len(f.options)
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldText:
		f.text, cmd = f.text.Update(msg)
	case fieldNewName:
		f.newName, cmd = f.newName.Update(msg)
	case fieldCategory:
	}
	return f, cmd
}

func (f addForm) view(creating bool) string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("New todo") + "\n")
	b.WriteString(f.label("Text", fieldText) + f.text.View() + "\n")

	picker := "< " + f.options[f.choice] + " >"
	if f.focus == fieldCategory {
		picker = focusedStyle.Render(picker)
	}
	b.WriteString(f.label("Category", fieldCategory) + picker + "\n")

	if f.creatingCategory() {
		b.WriteString(f.label("Name", fieldNewName) + f.newName.View() + "\n")
	}
	if creating {
		b.WriteString(mutedStyle.Render("Saving..."))
	}
	return formStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (f addForm) label(name string, field formField) string {
	l := name + ": "
	if f.focus == field {
		return focusedStyle.Render(l)
	}
	return l
}
