package shirei

// Hooks associate arbitrary state with the current container. A hook that is
// not used during a frame is dropped at the end of that frame.

type HookEntryKey struct {
	Data    any // container id, or any comparable value for data hooks
	ItemKey any
}

var hooksMap = make(map[HookEntryKey]any)
var hooksMapNext = make(map[HookEntryKey]any)

func Use[T any](itemKey any) *T {
	return UseWithInit[T](itemKey, nil)
}

func UseWithInit[T any](itemKey any, initFn func() *T) *T {
	key := HookEntryKey{Data: CurrentId(), ItemKey: itemKey}
	if value, found := hooksMap[key]; found {
		hooksMapNext[key] = value
		return value.(*T)
	}

	var value *T
	if initFn != nil {
		value = initFn()
	} else {
		value = new(T)
	}
	hooksMap[key] = value
	hooksMapNext[key] = value
	return value
}

// data hooks are keyed by a value instead of a container and survive frames
// in which they are not used
var dataHooks = make(map[HookEntryKey]any)

func UseData[T any](data any, itemKey any) *T {
	key := HookEntryKey{Data: data, ItemKey: itemKey}
	value, found := dataHooks[key]
	if !found {
		value = new(T)
		dataHooks[key] = value
	}
	return value.(*T)
}

func PeekData[T any](data any, itemKey any) (*T, bool) {
	value, found := dataHooks[HookEntryKey{Data: data, ItemKey: itemKey}]
	if !found {
		return nil, false
	}
	typed, ok := value.(*T)
	return typed, ok
}

func DeleteHookedData(data any, itemKey any) {
	delete(dataHooks, HookEntryKey{Data: data, ItemKey: itemKey})
}
