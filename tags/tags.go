package tags

import "github.com/yohamta/donburi"

var (
	Fighter = donburi.NewTag().SetName("Fighter")
	Effect  = donburi.NewTag().SetName("Effect")
)
