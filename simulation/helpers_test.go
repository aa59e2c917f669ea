package simulation

import (
	"github.com/vlachapelle/spikepaddle/elements"
	"github.com/vlachapelle/spikepaddle/translator"
)

func translatorForPong(ball *elements.Ball) *translator.SignalTranslator {
	return translator.New([]string{"sensor"}, 1, 1.0, 4.0, 100.0, 100.0, 12.0, func() (float64, float64) {
		return ball.Position().X, ball.Position().Y
	})
}
