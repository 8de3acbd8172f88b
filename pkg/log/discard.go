package log

import "context"

// discard drops every entry; used for LevelDisabled.
type discard struct{}

func (d discard) With(Fields) Logger                 { return d }
func (d discard) WithField(string, any) Logger       { return d }
func (d discard) WithError(error) Logger             { return d }
func (d discard) Log(context.Context, Level, string) {}
func (d discard) Debug(context.Context, string)      {}
func (d discard) Info(context.Context, string)       {}
func (d discard) Warn(context.Context, string)       {}
func (d discard) Error(context.Context, string)      {}

func (d discard) WithContext(ctx context.Context, _ Fields) context.Context {
	return ctx
}
