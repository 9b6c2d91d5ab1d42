package command

import (
	"github.com/sandevgo/pdfchat/internal/core"
	"github.com/sandevgo/pdfchat/internal/service/memory"
)

func NewRouter(mem *memory.Memory, pages core.PagesRepository, store string, react bool) *Router {
	router := New(nil)
	for _, cmd := range []core.Command{
		NewHelpCommand(router),
		NewClearCommand(mem),
		NewStatusCommand(mem, pages, store, react),
	} {
		router.commands[cmd.Name()] = cmd
	}
	return router
}
