package buildinfo

const Graffiti = " ___  _     ___ _  _ _  _____  \n| _ \\| |   |_ _| \\| | |/ / _ \\ \n|  _/| |__  | || .` | ' < (_) |\n|_|  |____||___|_|\\_|_|\\_\\___/ \n\n"

var (
	BuildTag string = "v0.0.0"
	Name     string = "PLINKO"
	Time     string = ""
)

type buildinfo struct{}

func (buildinfo) Tag() string {
	return BuildTag
}

func (buildinfo) Name() string {
	return Name
}

func (buildinfo) Time() string {
	return Time
}

var Info buildinfo
