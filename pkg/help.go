package iomigrate

import (
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
)

// HelpStatic generates the help output listing every environment variable.
func HelpStatic() string {
	rtGrp, _ := settings.GroupFromComponent(&runhttp.Component{})
	ioGrp, _ := settings.GroupFromComponent(&IOComponent{})
	return settings.ExampleEnvGroups([]settings.Group{&settings.SettingGroup{
		NameValue:   EnvPrefix,
		GroupValues: []settings.Group{rtGrp, ioGrp},
	}})
}
