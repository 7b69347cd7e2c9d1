package commands

const (
	CommandNameU       = "u"
	CommandNameVersion = "version"
)
