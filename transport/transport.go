package transport

import "github.com/flavioheleno/ssd1306"

var (
	_ ssd1306.Transport = &I2C{}
	_ ssd1306.Transport = &SPI{}
	_ ssd1306.Transport = &TinyGoI2C{}
)
