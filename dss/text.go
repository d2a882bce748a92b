package dss

// IText runs DSS script commands on the context.
type IText struct {
	common
}

func (text *IText) Init(ctx *DSSContext) {
	text.initCommon(ctx)
}

// Input command string for the DSS.
func (text *IText) Get_Command() (string, error) {
	return text.ctx.stringResult(text.ctx.api.TextGetCommand(text.ctx.h))
}

// Runs a DSS script: one or more commands, newline-separated.
func (text *IText) Set_Command(value string) error {
	text.ctx.api.TextSetCommand(text.ctx.h, value)
	return text.ctx.check()
}

// Result string for the last command.
func (text *IText) Result() (string, error) {
	return text.ctx.stringResult(text.ctx.api.TextResult(text.ctx.h))
}
