package main

import (
	"fmt"
	"syscall/js"
)

// await blocks until the promise settles.
func await(promise js.Value) (js.Value, error) {
	type result struct {
		v   js.Value
		err error
	}
	ch := make(chan result, 1)
	onResolve := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		ch <- result{v: args[0]}
		return nil
	})
	onReject := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		ch <- result{err: js.Error{Value: args[0]}}
		return nil
	})
	defer onResolve.Release()
	defer onReject.Release()

	promise.Call("then", onResolve, onReject)
	r := <-ch
	return r.v, r.err
}

// fetchGet downloads the whole body at path.
func fetchGet(path string) ([]byte, error) {
	resp, err := await(js.Global().Call("fetch", path))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	if !resp.Get("ok").Bool() {
		return nil, fmt.Errorf("fetch %s: status %d %s",
			path, resp.Get("status").Int(), resp.Get("statusText").String())
	}
	buf, err := await(resp.Call("arrayBuffer"))
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", path, err)
	}
	array := js.Global().Get("Uint8Array").New(buf)
	b := make([]byte, array.Get("byteLength").Int())
	js.CopyBytesToGo(b, array)
	return b, nil
}
