package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/gamedb/bootstrap"
	"github.com/fulldump/gamedb/configuration"
)

var banner = `
  _____                      _____  ____
 / ____|                    |  __ \|  _ \
| |  __  __ _ _ __ ___   ___| |  | | |_) |
| | |_ |/ _' | '_ ' _ \ / _ \ |  | |  _ <
| |__| | (_| | | | | | |  __/ |__| | |_) |
 \_____|\__,_|_| |_| |_|\___|_____/|____/
                        version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	start, _ := bootstrap.Bootstrap(&c)

	start()
}
