package glutil

import (
	"fmt"
)

// Provision returns a ready-to-use rendering context.
//
// If c.Context is set it is returned unchanged. Otherwise a context is created
// on c.Surface, or on a new surface from p, with unset attributes defaulted.
// Floating-point texture extensions are enabled when c.Float is set and
// blending is configured when alpha is off.
func Provision(p Platform, c *Config) (Context, error) {
	if c == nil {
		c = &Config{}
	}
	if c.Context != nil {
		return c.Context, nil
	}
	if p == nil {
		return nil, fmt.Errorf("%w: platform is not provided", ErrInvalidArgument)
	}

	attrs := c.Attributes()

	s := c.Surface
	if s == nil {
		var err error
		if s, err = p.NewSurface(attrs.Width, attrs.Height); err != nil {
			return nil, err
		}
	}
	ctx, err := p.NewContext(s, attrs)
	if err != nil {
		return nil, err
	}

	if c.Float {
		if err := enableFloat(ctx); err != nil {
			return nil, err
		}
	}

	if !attrs.Alpha {
		ctx.Enable(Blend)
		ctx.BlendEquation(FuncAdd)
		ctx.BlendFunc(SrcAlpha, OneMinusSrcAlpha)
	}
	return ctx, nil
}

func enableFloat(ctx Context) error {
	linear := ExtTextureFloatLinear
	if _, ok := ctx.GetExtension(ExtTextureFloat); !ok {
		if _, ok := ctx.GetExtension(ExtTextureHalfFloat); !ok {
			return errFloatNotSupported
		}
		linear = ExtTextureHalfFloatLinear
	}
	if _, ok := ctx.GetExtension(linear); !ok {
		return fmt.Errorf("%w (%s)", errFloatNotSupported, linear)
	}
	return nil
}
