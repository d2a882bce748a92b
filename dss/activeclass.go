package dss

// IActiveClass iterates over the objects of the active DSS class.
type IActiveClass struct {
	common
}

func (activeclass *IActiveClass) Init(ctx *DSSContext) {
	activeclass.initCommon(ctx)
}

// Array of strings consisting of all element names in the active class.
func (activeclass *IActiveClass) AllNames() ([]string, error) {
	return activeclass.ctx.stringArrayResult(activeclass.ctx.api.ActiveClassAllNames(activeclass.ctx.h))
}

// Number of elements in Active Class. Same as NumElements Property.
func (activeclass *IActiveClass) Count() (int32, error) {
	return activeclass.ctx.int32Result(activeclass.ctx.api.ActiveClassCount(activeclass.ctx.h))
}

// Sets first element in the active class to be the active DSS object.
func (activeclass *IActiveClass) First() (int32, error) {
	return activeclass.ctx.int32Result(activeclass.ctx.api.ActiveClassFirst(activeclass.ctx.h))
}

// Sets next element in active class to be the active DSS object.
func (activeclass *IActiveClass) Next() (int32, error) {
	return activeclass.ctx.int32Result(activeclass.ctx.api.ActiveClassNext(activeclass.ctx.h))
}

// Name of the Active Element of the Active Class.
func (activeclass *IActiveClass) Get_Name() (string, error) {
	return activeclass.ctx.stringResult(activeclass.ctx.api.ActiveClassGetName(activeclass.ctx.h))
}

func (activeclass *IActiveClass) Set_Name(value string) error {
	activeclass.ctx.api.ActiveClassSetName(activeclass.ctx.h, value)
	return activeclass.ctx.check()
}

// Number of elements in this class.
func (activeclass *IActiveClass) NumElements() (int32, error) {
	return activeclass.ctx.int32Result(activeclass.ctx.api.ActiveClassNumElements(activeclass.ctx.h))
}

// Returns name of active class.
func (activeclass *IActiveClass) ActiveClassName() (string, error) {
	return activeclass.ctx.stringResult(activeclass.ctx.api.ActiveClassActiveClassName(activeclass.ctx.h))
}

// Get the name of the parent class of the active class.
func (activeclass *IActiveClass) ActiveClassParent() (string, error) {
	return activeclass.ctx.stringResult(activeclass.ctx.api.ActiveClassActiveClassParent(activeclass.ctx.h))
}
